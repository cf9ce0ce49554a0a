package usecase

import (
	"context"
	"testing"

	"github.com/ahmadeq/test-clinic-demo/internal/delivery/dto"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPatientCreateAndUpdateFlow(t *testing.T) {
	s := newTestStore(t)
	u := NewPatientUsecase(s, logrus.StandardLogger())

	created, err := u.Create(context.Background(), &dto.CreatePatientRequest{
		FirstName: "Huda",
		LastName:  "Karim",
		Gender:    "female",
		BirthDate: "1995-06-01",
		Phone:     "+962790000009",
	})
	require.NoError(t, err)
	assert.Equal(t, "unset", created.Contact.Email)
	assert.Equal(t, created.CreatedAt, created.UpdatedAt)

	badDate := "not-a-date"
	_, err = u.Update(context.Background(), created.ID, &dto.UpdatePatientRequest{BirthDate: &badDate})
	assert.ErrorIs(t, err, ErrInvalidDate)

	newDate := "1990-12-25"
	updated, err := u.Update(context.Background(), created.ID, &dto.UpdatePatientRequest{BirthDate: &newDate})
	require.NoError(t, err)
	assert.Equal(t, "1990-12-25", updated.BirthDate)
	assert.NotEqual(t, created.Age, updated.Age)
}

func TestPatientUpdateNotFound(t *testing.T) {
	s := newTestStore(t)
	u := NewPatientUsecase(s, logrus.StandardLogger())

	notes := "moved abroad"
	_, err := u.Update(context.Background(), uuid.New(), &dto.UpdatePatientRequest{Notes: &notes})
	assert.ErrorIs(t, err, ErrPatientNotFound)
}

func TestPatientListAppliesFilters(t *testing.T) {
	s := newTestStore(t)
	u := NewPatientUsecase(s, logrus.StandardLogger())

	resp, err := u.List(context.Background(), &dto.PatientListQuery{Search: "haddad"})
	require.NoError(t, err)
	require.Equal(t, 1, resp.Total)
	assert.Equal(t, "Omar Haddad", resp.Patients[0].FullName)

	resp, err = u.List(context.Background(), &dto.PatientListQuery{Genders: []string{"female"}})
	require.NoError(t, err)
	assert.Equal(t, 2, resp.Total)
}
