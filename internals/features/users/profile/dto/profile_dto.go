// file: internals/features/users/profile/dto/profile_dto.go
package dto

import "strings"

type UpsertProfileRequest struct {
	Division string `json:"division" form:"division" validate:"required,min=1,max=100"`
	District string `json:"district" form:"district" validate:"required,min=1,max=100"`
	Thana    string `json:"thana" form:"thana" validate:"required,min=1,max=100"`
}

func (r *UpsertProfileRequest) Normalize() {
	r.Division = strings.TrimSpace(r.Division)
	r.District = strings.TrimSpace(r.District)
	r.Thana = strings.TrimSpace(r.Thana)
}
