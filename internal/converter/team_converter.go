package converter

import (
	"practice-site/internal/delivery/dto"
	"practice-site/internal/domain/entity"
)

func CreateTeamMemberRequestToEntity(id string, req *dto.CreateTeamMemberRequest) entity.TeamMember {
	return entity.TeamMember{
		ID:           id,
		Name:         req.Name,
		Title:        req.Title,
		Specialty:    req.Specialty,
		Credentials:  nonNilStrings(req.Credentials),
		Bio:          req.Bio,
		Specialties:  nonNilStrings(req.Specialties),
		Languages:    nonNilStrings(req.Languages),
		Availability: req.Availability,
		Phone:        req.Phone,
		Email:        req.Email,
		Experience:   req.Experience,
		Image:        req.Image,
		IsActive:     boolOrDefault(req.IsActive, true),
	}
}

func ApplyTeamMemberUpdate(member *entity.TeamMember, req *dto.UpdateTeamMemberRequest) {
	apply(&member.Name, req.Name)
	apply(&member.Title, req.Title)
	apply(&member.Specialty, req.Specialty)
	apply(&member.Credentials, req.Credentials)
	apply(&member.Bio, req.Bio)
	apply(&member.Specialties, req.Specialties)
	apply(&member.Languages, req.Languages)
	apply(&member.Availability, req.Availability)
	apply(&member.Phone, req.Phone)
	apply(&member.Email, req.Email)
	apply(&member.Experience, req.Experience)
	apply(&member.Image, req.Image)
	apply(&member.IsActive, req.IsActive)
	member.Credentials = nonNilStrings(member.Credentials)
	member.Specialties = nonNilStrings(member.Specialties)
	member.Languages = nonNilStrings(member.Languages)
}
