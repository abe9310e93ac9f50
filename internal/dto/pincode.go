package dto

type LocalityDTO struct {
	Pincode  string `json:"pincode" example:"560001"`
	Name     string `json:"name" example:"Shivajinagar"`
	District string `json:"district" example:"Bengaluru"`
	State    string `json:"state" example:"Karnataka"`
}
