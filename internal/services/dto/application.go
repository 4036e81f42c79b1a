package dto

type SubmitApplicationRequest struct {
	CoverLetter string `json:"cover_letter" validate:"omitempty,max=5000"`
}

type SetApplicationStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=PENDING REVIEWED ACCEPTED REJECTED"`
}
