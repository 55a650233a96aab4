package usecase

import (
	"context"
	"errors"

	"practice-site/internal/converter"
	"practice-site/internal/delivery/dto"
	"practice-site/internal/domain/entity"
	"practice-site/internal/service"

	"github.com/sirupsen/logrus"
)

var (
	ErrTeamMemberNotFound = errors.New("team member not found")
)

type TeamUsecase interface {
	List(ctx context.Context, query dto.TeamListQuery) ([]entity.TeamMember, error)
	Get(ctx context.Context, id string) (*entity.TeamMember, error)
	Create(ctx context.Context, req *dto.CreateTeamMemberRequest) (*entity.TeamMember, error)
	Update(ctx context.Context, id string, req *dto.UpdateTeamMemberRequest) (*entity.TeamMember, error)
	Delete(ctx context.Context, id string) error
}

type teamUsecase struct {
	data         *DataAccess
	log          *logrus.Logger
	auditService service.AuditService
}

func NewTeamUsecase(data *DataAccess, log *logrus.Logger, auditService service.AuditService) TeamUsecase {
	return &teamUsecase{
		data:         data,
		log:          log,
		auditService: auditService,
	}
}

func (u *teamUsecase) List(ctx context.Context, query dto.TeamListQuery) ([]entity.TeamMember, error) {
	doc, err := u.data.readOrEmpty(ctx)
	if err != nil {
		u.log.Warnf("Failed to read team: %+v", err)
		return nil, err
	}

	members := make([]entity.TeamMember, 0, len(doc.Team))
	for _, m := range doc.Team {
		if query.ActiveOnly && !m.IsActive {
			continue
		}
		members = append(members, m)
	}

	return members, nil
}

func (u *teamUsecase) Get(ctx context.Context, id string) (*entity.TeamMember, error) {
	doc, err := u.data.read(ctx)
	if err != nil {
		u.log.Warnf("Failed to read team: %+v", err)
		return nil, err
	}

	i := findTeamMember(doc, id)
	if i < 0 {
		return nil, ErrTeamMemberNotFound
	}

	return &doc.Team[i], nil
}

func (u *teamUsecase) Create(ctx context.Context, req *dto.CreateTeamMemberRequest) (*entity.TeamMember, error) {
	var created entity.TeamMember
	err := u.data.mutate(ctx, func(doc *entity.SiteDocument) error {
		id := newID(entity.TeamMemberIDPrefix, func(id string) bool { return findTeamMember(doc, id) >= 0 })
		created = converter.CreateTeamMemberRequestToEntity(id, req)
		doc.Team = append(doc.Team, created)
		return nil
	})
	if err != nil {
		u.log.Warnf("Failed to create team member: %+v", err)
		return nil, err
	}

	u.auditService.LogCreate(ctx, service.AuditActionTeamCreate, "team_member", created.ID, created)

	return &created, nil
}

func (u *teamUsecase) Update(ctx context.Context, id string, req *dto.UpdateTeamMemberRequest) (*entity.TeamMember, error) {
	var oldValue, updated entity.TeamMember
	err := u.data.mutate(ctx, func(doc *entity.SiteDocument) error {
		i := findTeamMember(doc, id)
		if i < 0 {
			return ErrTeamMemberNotFound
		}
		oldValue = doc.Team[i]
		converter.ApplyTeamMemberUpdate(&doc.Team[i], req)
		updated = doc.Team[i]
		return nil
	})
	if err != nil {
		if !errors.Is(err, ErrTeamMemberNotFound) {
			u.log.Warnf("Failed to update team member: %+v", err)
		}
		return nil, err
	}

	u.auditService.LogUpdate(ctx, service.AuditActionTeamUpdate, "team_member", id, oldValue, updated)

	return &updated, nil
}

// Delete removes the team member. Deleting an unknown id succeeds without writing.
func (u *teamUsecase) Delete(ctx context.Context, id string) error {
	err := u.data.mutate(ctx, func(doc *entity.SiteDocument) error {
		i := findTeamMember(doc, id)
		if i < 0 {
			return errNoChange
		}
		doc.Team = append(doc.Team[:i], doc.Team[i+1:]...)
		return nil
	})
	if err != nil {
		u.log.Warnf("Failed to delete team member: %+v", err)
		return err
	}

	u.auditService.LogDelete(ctx, service.AuditActionTeamDelete, "team_member", id)

	return nil
}

func findTeamMember(doc *entity.SiteDocument, id string) int {
	for i := range doc.Team {
		if doc.Team[i].ID == id {
			return i
		}
	}
	return -1
}
