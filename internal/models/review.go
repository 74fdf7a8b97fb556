package models

type Review struct {
	ID             int    `json:"id"`
	DateCreated    string `json:"dateCreated"`
	ProductID      int    `json:"productId"`
	Status         string `json:"status"`
	Reviewer       string `json:"reviewer"`
	ReviewerEmail  string `json:"reviewerEmail"`
	Review         string `json:"review"`
	Rating         int    `json:"rating"`
	Verified       bool   `json:"verified"`
	ReviewerAvatar string `json:"reviewerAvatar"`
}
