package service

import (
	"context"

	"practice-site/internal/delivery/http/middleware"

	"github.com/sirupsen/logrus"
)

// Common audit actions
const (
	AuditActionAdminLogin     = "admin.login"
	AuditActionAdminLogout    = "admin.logout"
	AuditActionPracticeUpdate = "practice.update"
	AuditActionServiceCreate  = "service.create"
	AuditActionServiceUpdate  = "service.update"
	AuditActionServiceDelete  = "service.delete"
	AuditActionTeamCreate     = "team.create"
	AuditActionTeamUpdate     = "team.update"
	AuditActionTeamDelete     = "team.delete"
	AuditActionBlogCreate     = "blog.create"
	AuditActionBlogUpdate     = "blog.update"
	AuditActionBlogDelete     = "blog.delete"
	AuditActionContactUpdate  = "contact.update"
	AuditActionContactDelete  = "contact.delete"
	AuditActionGalleryUpdate  = "gallery.update"
	AuditActionUIUpdate       = "ui.update"
	AuditActionDocumentSave   = "document.save"
	AuditActionUploadCreate   = "upload.create"
	AuditActionUploadDelete   = "upload.delete"
)

// AuditService records admin changes to site content as structured log entries.
type AuditService interface {
	LogCreate(ctx context.Context, action string, entityName string, entityID string, newValue interface{})
	LogUpdate(ctx context.Context, action string, entityName string, entityID string, oldValue, newValue interface{})
	LogDelete(ctx context.Context, action string, entityName string, entityID string)
}

type auditService struct {
	log *logrus.Logger
}

func NewAuditService(log *logrus.Logger) AuditService {
	return &auditService{log: log}
}

func (s *auditService) entry(ctx context.Context, action, entityName, entityID string) *logrus.Entry {
	admin, _ := middleware.GetUsernameFromContext(ctx)
	return s.log.WithFields(logrus.Fields{
		"audit":     true,
		"action":    action,
		"entity":    entityName,
		"entity_id": entityID,
		"admin":     admin,
	})
}

// LogCreate logs a create action
func (s *auditService) LogCreate(ctx context.Context, action string, entityName string, entityID string, newValue interface{}) {
	s.entry(ctx, action, entityName, entityID).
		WithField("new_value", newValue).
		Info("audit")
}

// LogUpdate logs an update action with old and new values
func (s *auditService) LogUpdate(ctx context.Context, action string, entityName string, entityID string, oldValue, newValue interface{}) {
	s.entry(ctx, action, entityName, entityID).
		WithField("old_value", oldValue).
		WithField("new_value", newValue).
		Info("audit")
}

// LogDelete logs a delete action
func (s *auditService) LogDelete(ctx context.Context, action string, entityName string, entityID string) {
	s.entry(ctx, action, entityName, entityID).Info("audit")
}
