package pincode

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/washhub/washhub/internal/dto"
	pincodesvc "github.com/washhub/washhub/internal/pincode"
	"github.com/washhub/washhub/pkg/utils"
)

type Service interface {
	Lookup(ctx context.Context, pincode string) []pincodesvc.Locality
}

type PincodeHandler struct {
	pincodeService Service
}

func New(pincodeService Service) *PincodeHandler {
	return &PincodeHandler{
		pincodeService: pincodeService,
	}
}

// Lookup godoc
//
//	@Summary		Look up localities for a pincode
//	@Description	Proxies the external pincode directory; degrades to placeholder localities when the directory is unreachable.
//	@Tags			Pincode
//	@Produce		json
//	@Param			pincode	path		string	true	"Pincode"
//	@Success		200		{array}		dto.LocalityDTO
//	@Failure		400		{object}	utils.Response	"Missing pincode"
//	@Router			/api/pincode/{pincode} [get]
func (h *PincodeHandler) Lookup(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "pincode")
	if code == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "pincode is required")
		return
	}

	localities := h.pincodeService.Lookup(r.Context(), code)

	response := make([]dto.LocalityDTO, 0, len(localities))
	for _, l := range localities {
		response = append(response, dto.LocalityDTO{
			Pincode:  l.Pincode,
			Name:     l.Name,
			District: l.District,
			State:    l.State,
		})
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}
