package dto

type CreateBranchRequest struct {
	Name    string  `json:"name"    validate:"required,min=2"`
	Address string  `json:"address" validate:"required"`
	Phone   *string `json:"phone"`
	IsMain  bool    `json:"is_main"`
}

type UpdateBranchRequest struct {
	Name    *string `json:"name" validate:"omitempty,min=2"`
	Address *string `json:"address"`
	Phone   *string `json:"phone"`
}

type BranchResponse struct {
	ID      string  `json:"id"`
	Name    string  `json:"name"`
	Address string  `json:"address"`
	Phone   *string `json:"phone,omitempty"`
	IsMain  bool    `json:"is_main"`
}

type RedeemActivationCodeRequest struct {
	Code string `json:"code" validate:"required,min=6"`
}

type ActivationCodeResponse struct {
	Code string `json:"code"`
	Used bool   `json:"used"`
}
