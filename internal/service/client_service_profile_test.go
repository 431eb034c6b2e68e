package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-career-path/internal/adapter"
	"github.com/MKhiriev/go-career-path/internal/app"
	"github.com/MKhiriev/go-career-path/internal/logger"
	"github.com/MKhiriev/go-career-path/internal/mock"
	"github.com/MKhiriev/go-career-path/models"
)

func newTestProfileSvc(t *testing.T, ctrl *gomock.Controller) (*profileService, *mock.MockIdentityService, *mock.MockGenerator) {
	t.Helper()
	identity := mock.NewMockIdentityService(ctrl)
	generator := mock.NewMockGenerator(ctrl)

	svc := NewProfileService(identity, generator, logger.Nop()).(*profileService)
	return svc, identity, generator
}

func TestProfileService_Submit_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, identity, generator := newTestProfileSvc(t, ctrl)

	profile := models.Profile{Name: "Jane Doe", CareerGoal: "Senior Frontend Developer"}

	gomock.InOrder(
		generator.EXPECT().
			ExtractProfile(gomock.Any(), "Jane Doe, 5 years frontend", "Senior Frontend Developer").
			Return(profile, nil).
			Times(1),
		identity.EXPECT().WriteProfile(gomock.Any(), "alice", profile).Return(nil),
	)

	got, err := svc.Submit(context.Background(), "alice", "Jane Doe, 5 years frontend", "Senior Frontend Developer")
	require.NoError(t, err)
	assert.Equal(t, profile, got)
}

func TestProfileService_Submit_Validation(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, identity, generator := newTestProfileSvc(t, ctrl)

	generator.EXPECT().ExtractProfile(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
	identity.EXPECT().WriteProfile(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	for _, input := range [][2]string{{"", "goal"}, {"resume", ""}, {"  \n", "goal"}, {"resume", "\t "}} {
		_, err := svc.Submit(context.Background(), "alice", input[0], input[1])
		assert.ErrorIs(t, err, ErrValidation)
		assert.Contains(t, err.Error(), app.MsgProfileInputRequired)
	}
}

func TestProfileService_Submit_GenerationFailureWritesNothing(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, identity, generator := newTestProfileSvc(t, ctrl)

	genErr := errors.Join(adapter.ErrGeneration, errors.New("quota exceeded"))
	generator.EXPECT().ExtractProfile(gomock.Any(), gomock.Any(), gomock.Any()).Return(models.Profile{}, genErr)
	identity.EXPECT().WriteProfile(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	_, err := svc.Submit(context.Background(), "alice", "resume", "goal")
	assert.Equal(t, genErr, err, "generator error is surfaced verbatim")
}

func TestProfileService_Submit_SaveFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, identity, generator := newTestProfileSvc(t, ctrl)

	generator.EXPECT().ExtractProfile(gomock.Any(), gomock.Any(), gomock.Any()).Return(models.Profile{Name: "Jane"}, nil)
	identity.EXPECT().WriteProfile(gomock.Any(), "alice", gomock.Any()).Return(errors.New("disk full"))

	_, err := svc.Submit(context.Background(), "alice", "resume", "goal")
	assert.ErrorIs(t, err, ErrSavingProfile)
}

func TestProfileService_Submit_NoSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _, generator := newTestProfileSvc(t, ctrl)

	generator.EXPECT().ExtractProfile(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	_, err := svc.Submit(context.Background(), "", "resume", "goal")
	assert.ErrorIs(t, err, ErrNoSession)
}
