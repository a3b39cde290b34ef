package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/ketoplate/backend/internal/models"
	"github.com/ketoplate/backend/internal/testhelpers"
	"github.com/ketoplate/backend/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func stringPtr(s string) *string { return &s }

func TestCreateAppointmentDefaultsToScheduled(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	svc := NewAppointmentService(db)
	userID := uuid.New()

	appt, err := svc.CreateAppointment(context.Background(), userID, &types.CreateAppointmentRequest{
		Title:       "Nutrition consult",
		Notes:       "Review monthly progress",
		ScheduledAt: time.Now().AddDate(0, 0, 7),
	})
	require.NoError(t, err)
	assert.Equal(t, models.AppointmentScheduled, appt.Status)
	assert.Equal(t, userID, appt.UserID)
}

func TestListAppointmentsUpcomingExcludesPastAndCancelled(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	svc := NewAppointmentService(db)
	ctx := context.Background()
	userID := uuid.New()

	_, err := svc.CreateAppointment(ctx, userID, &types.CreateAppointmentRequest{
		Title: "Past consult", ScheduledAt: time.Now().AddDate(0, 0, -7),
	})
	require.NoError(t, err)
	future, err := svc.CreateAppointment(ctx, userID, &types.CreateAppointmentRequest{
		Title: "Future consult", ScheduledAt: time.Now().AddDate(0, 0, 7),
	})
	require.NoError(t, err)
	cancelled, err := svc.CreateAppointment(ctx, userID, &types.CreateAppointmentRequest{
		Title: "Cancelled consult", ScheduledAt: time.Now().AddDate(0, 0, 14),
	})
	require.NoError(t, err)
	_, err = svc.CancelAppointment(ctx, userID, cancelled.ID)
	require.NoError(t, err)

	upcoming, err := svc.ListAppointments(ctx, userID, true)
	require.NoError(t, err)
	require.Len(t, upcoming, 1)
	assert.Equal(t, future.ID, upcoming[0].ID)

	all, err := svc.ListAppointments(ctx, userID, false)
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestUpdateAppointmentPatchesFields(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	svc := NewAppointmentService(db)
	ctx := context.Background()
	userID := uuid.New()

	appt, err := svc.CreateAppointment(ctx, userID, &types.CreateAppointmentRequest{
		Title: "Consult", ScheduledAt: time.Now().AddDate(0, 0, 7),
	})
	require.NoError(t, err)

	updated, err := svc.UpdateAppointment(ctx, userID, appt.ID, &types.UpdateAppointmentRequest{
		Notes:  stringPtr("Bring recent labs"),
		Status: stringPtr(models.AppointmentCompleted),
	})
	require.NoError(t, err)
	assert.Equal(t, "Consult", updated.Title)
	assert.Equal(t, "Bring recent labs", updated.Notes)
	assert.Equal(t, models.AppointmentCompleted, updated.Status)
}

func TestUpdateAppointmentRejectsUnknownStatus(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	svc := NewAppointmentService(db)
	ctx := context.Background()
	userID := uuid.New()

	appt, err := svc.CreateAppointment(ctx, userID, &types.CreateAppointmentRequest{
		Title: "Consult", ScheduledAt: time.Now().AddDate(0, 0, 7),
	})
	require.NoError(t, err)

	_, err = svc.UpdateAppointment(ctx, userID, appt.ID, &types.UpdateAppointmentRequest{
		Status: stringPtr("rescheduled"),
	})
	assert.ErrorIs(t, err, ErrInvalidAppointmentStatus)
}

func TestAppointmentOwnershipEnforced(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	svc := NewAppointmentService(db)
	ctx := context.Background()
	userID := uuid.New()

	appt, err := svc.CreateAppointment(ctx, userID, &types.CreateAppointmentRequest{
		Title: "Consult", ScheduledAt: time.Now().AddDate(0, 0, 7),
	})
	require.NoError(t, err)

	_, err = svc.GetAppointment(ctx, uuid.New(), appt.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	err = svc.DeleteAppointment(ctx, uuid.New(), appt.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestDeleteAppointment(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	svc := NewAppointmentService(db)
	ctx := context.Background()
	userID := uuid.New()

	appt, err := svc.CreateAppointment(ctx, userID, &types.CreateAppointmentRequest{
		Title: "Consult", ScheduledAt: time.Now().AddDate(0, 0, 7),
	})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteAppointment(ctx, userID, appt.ID))
	_, err = svc.GetAppointment(ctx, userID, appt.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}
