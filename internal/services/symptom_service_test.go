package services

import (
	"strings"
	"testing"
	"time"

	"github.com/steadyjournal/steady/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSymptomStore struct {
	logs   []models.SymptomLog
	nextID uint
}

func (store *fakeSymptomStore) Create(entry *models.SymptomLog) error {
	store.nextID++
	entry.ID = store.nextID
	store.logs = append(store.logs, *entry)
	return nil
}

func (store *fakeSymptomStore) ListByUserRange(userID uint, fromStart *time.Time, toEnd *time.Time, variant string) ([]models.SymptomLog, error) {
	out := make([]models.SymptomLog, 0)
	for _, entry := range store.logs {
		if entry.UserID != userID {
			continue
		}
		if variant != "" && entry.Variant != variant {
			continue
		}
		if fromStart != nil && entry.RecordedAt.Before(*fromStart) {
			continue
		}
		if toEnd != nil && !entry.RecordedAt.Before(*toEnd) {
			continue
		}
		out = append(out, entry)
	}
	return out, nil
}

func (store *fakeSymptomStore) FindByIDForUser(logID uint, userID uint) (models.SymptomLog, bool, error) {
	for _, entry := range store.logs {
		if entry.ID == logID && entry.UserID == userID {
			return entry, true, nil
		}
	}
	return models.SymptomLog{}, false, nil
}

func (store *fakeSymptomStore) Delete(target *models.SymptomLog) error {
	kept := store.logs[:0]
	for _, entry := range store.logs {
		if entry.ID != target.ID {
			kept = append(kept, entry)
		}
	}
	store.logs = kept
	return nil
}

func newSymptomFixture() (*SymptomService, *fakeSymptomStore) {
	store := &fakeSymptomStore{}
	return NewSymptomService(store), store
}

func TestSymptomCreateValidation(t *testing.T) {
	service, _ := newSymptomFixture()
	now := time.Now()

	_, err := service.Create(1, now, SymptomLogInput{Variant: "mood"})
	assert.ErrorIs(t, err, ErrInvalidSymptomVariant)

	_, err = service.Create(1, now, SymptomLogInput{Variant: ""})
	assert.ErrorIs(t, err, ErrInvalidSymptomVariant)

	_, err = service.Create(1, now, SymptomLogInput{Variant: "lifestyle", SleepLevel: intPtr(0)})
	assert.ErrorIs(t, err, ErrInvalidSymptomLevel)

	_, err = service.Create(1, now, SymptomLogInput{Variant: "lifestyle", StressLevel: intPtr(6)})
	assert.ErrorIs(t, err, ErrInvalidSymptomLevel)

	_, err = service.Create(1, now, SymptomLogInput{Variant: "voice", Note: strings.Repeat("x", 4001)})
	assert.ErrorIs(t, err, ErrInvalidSymptomNote)
}

func TestSymptomCreatePopulatesOnlyVariantFields(t *testing.T) {
	service, _ := newSymptomFixture()
	now := time.Now()

	// Fields from other variants are dropped, not stored.
	entry, err := service.Create(1, now, SymptomLogInput{
		Variant:     " Dizziness ",
		Symptoms:    []string{"vertigo", "nausea"},
		Medications: []string{"should be ignored"},
		Note:        "should be ignored",
	})
	require.NoError(t, err)
	assert.Equal(t, models.VariantDizziness, entry.Variant)
	assert.Equal(t, []string{"vertigo", "nausea"}, entry.Symptoms)
	assert.Empty(t, entry.Medications)
	assert.Empty(t, entry.Note)

	voice, err := service.Create(1, now, SymptomLogInput{Variant: "voice", Note: "  hoarse  "})
	require.NoError(t, err)
	assert.Equal(t, "hoarse", voice.Note)
}

func TestSymptomCreateAllowsEmptyPayload(t *testing.T) {
	service, store := newSymptomFixture()

	entry, err := service.Create(1, time.Now(), SymptomLogInput{Variant: "dizziness"})
	require.NoError(t, err)
	assert.Empty(t, entry.Symptoms)
	assert.Len(t, store.logs, 1)
}

func TestNormalizeTags(t *testing.T) {
	got := normalizeTags([]string{" vertigo ", "", "Vertigo", "nausea", "  "})
	assert.Equal(t, []string{"vertigo", "nausea"}, got)

	many := make([]string, 0, 40)
	for index := 0; index < 40; index++ {
		many = append(many, strings.Repeat("t", index+1))
	}
	assert.Len(t, normalizeTags(many), maxSymptomTags)
}

func TestSymptomFetchForRange(t *testing.T) {
	service, _ := newSymptomFixture()
	location := DisplayLocation(8)

	day1 := time.Date(2025, 3, 9, 10, 0, 0, 0, location)
	day2 := time.Date(2025, 3, 11, 10, 0, 0, 0, location)
	_, err := service.Create(1, day1, SymptomLogInput{Variant: "dizziness", Symptoms: []string{"vertigo"}})
	require.NoError(t, err)
	_, err = service.Create(1, day2, SymptomLogInput{Variant: "medication", Medications: []string{"betahistine"}})
	require.NoError(t, err)

	from := time.Date(2025, 3, 10, 0, 0, 0, 0, location)
	logs, err := service.FetchForRange(1, &from, nil, "", location)
	require.NoError(t, err)
	require.Len(t, logs, 1)
	assert.Equal(t, models.VariantMedication, logs[0].Variant)

	logs, err = service.FetchForRange(1, nil, nil, "DIZZINESS", location)
	require.NoError(t, err)
	require.Len(t, logs, 1)
	assert.Equal(t, models.VariantDizziness, logs[0].Variant)

	_, err = service.FetchForRange(1, nil, nil, "bogus", location)
	assert.ErrorIs(t, err, ErrInvalidSymptomVariant)
}

func TestSymptomDeleteForUser(t *testing.T) {
	service, store := newSymptomFixture()

	entry, err := service.Create(1, time.Now(), SymptomLogInput{Variant: "voice", Note: "raspy"})
	require.NoError(t, err)

	// Another user cannot delete it.
	err = service.DeleteForUser(2, entry.ID)
	assert.ErrorIs(t, err, ErrSymptomLogNotFound)
	assert.Len(t, store.logs, 1)

	require.NoError(t, service.DeleteForUser(1, entry.ID))
	assert.Empty(t, store.logs)

	err = service.DeleteForUser(1, entry.ID)
	assert.ErrorIs(t, err, ErrSymptomLogNotFound)
}
