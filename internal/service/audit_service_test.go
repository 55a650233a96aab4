package service

import (
	"context"
	"testing"

	"practice-site/internal/delivery/http/middleware"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuditService_LogUpdateIncludesAdmin(t *testing.T) {
	log, hook := test.NewNullLogger()
	svc := NewAuditService(log)

	ctx := middleware.WithAdmin(context.Background(), "owner", "token-1")
	svc.LogUpdate(ctx, AuditActionServiceUpdate, "service", "service-1", "old", "new")

	require.Len(t, hook.AllEntries(), 1)
	entry := hook.LastEntry()
	assert.Equal(t, logrus.InfoLevel, entry.Level)
	assert.Equal(t, "owner", entry.Data["admin"])
	assert.Equal(t, AuditActionServiceUpdate, entry.Data["action"])
	assert.Equal(t, "service-1", entry.Data["entity_id"])
	assert.Equal(t, "new", entry.Data["new_value"])
}

func TestAuditService_LogDeleteWithoutAdmin(t *testing.T) {
	log, hook := test.NewNullLogger()
	svc := NewAuditService(log)

	svc.LogDelete(context.Background(), AuditActionBlogDelete, "blog_post", "post-1")

	require.Len(t, hook.AllEntries(), 1)
	assert.Equal(t, "", hook.LastEntry().Data["admin"])
}
