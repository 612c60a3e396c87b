//go:build unit

package appointment_test

import (
	"bytes"
	"encoding/hex"
	"errors"
	"strings"
	"testing"
	"time"

	"agenda-engine/internal/domain/appointment"
	"agenda-engine/internal/domain/slot"
	"agenda-engine/internal/pkg/clock"

	"cloud.google.com/go/civil"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewClientInfo(t *testing.T) {
	tests := []struct {
		name  string
		in    [3]string
		errIs error
	}{
		{name: "valid", in: [3]string{"Ana Pérez", "ana@example.com", "+1 809-555-0101"}},
		{name: "phone optional", in: [3]string{"Ana", "ana@example.com", ""}},
		{name: "surrounding whitespace trimmed", in: [3]string{"  Ana ", " ana@example.com ", ""}},
		{name: "empty name", in: [3]string{"   ", "ana@example.com", ""}, errIs: appointment.ErrClientNameRequired},
		{name: "long name", in: [3]string{strings.Repeat("a", 121), "ana@example.com", ""}, errIs: appointment.ErrClientNameTooLong},
		{name: "missing at sign", in: [3]string{"Ana", "ana.example.com", ""}, errIs: appointment.ErrInvalidEmail},
		{name: "empty email", in: [3]string{"Ana", "", ""}, errIs: appointment.ErrInvalidEmail},
		{name: "letters in phone", in: [3]string{"Ana", "ana@example.com", "call me"}, errIs: appointment.ErrInvalidPhone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := appointment.NewClientInfo(tt.in[0], tt.in[1], tt.in[2])
			if tt.errIs != nil {
				assert.ErrorIs(t, err, tt.errIs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, strings.TrimSpace(tt.in[0]), c.Name())
			assert.Equal(t, strings.TrimSpace(tt.in[1]), c.Email())
		})
	}
}

func TestCancelToken(t *testing.T) {
	token, err := appointment.GenerateCancelToken(bytes.NewReader(bytes.Repeat([]byte{0xab}, 20)))
	require.NoError(t, err)

	assert.Len(t, token.String(), 40)
	_, err = hex.DecodeString(token.String())
	require.NoError(t, err)
	assert.Len(t, token.Digest(), 32)

	parsed, err := appointment.ParseCancelToken(strings.ToUpper(token.String()))
	require.NoError(t, err)
	assert.Equal(t, token.Digest(), parsed.Digest())

	other, err := appointment.GenerateCancelToken(bytes.NewReader(bytes.Repeat([]byte{0xcd}, 20)))
	require.NoError(t, err)
	assert.NotEqual(t, token.Digest(), other.Digest())

	for _, bad := range []string{"", "abc", strings.Repeat("z", 40), strings.Repeat("a", 41)} {
		_, err := appointment.ParseCancelToken(bad)
		assert.ErrorIs(t, err, appointment.ErrMalformedToken, bad)
	}

	_, err = appointment.GenerateCancelToken(failingReader{})
	assert.Error(t, err)
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("entropy exhausted") }

func TestFactoryCreateAppointment(t *testing.T) {
	now := time.Date(2025, time.March, 1, 12, 0, 0, 0, time.UTC)
	f := appointment.NewFactory(clock.NewMockClock(now))

	client, err := appointment.NewClientInfo("Ana", "ana@example.com", "")
	require.NoError(t, err)
	start := time.Date(2025, time.March, 10, 13, 0, 0, 0, time.UTC)
	window := slot.Window{Start: start, End: start.Add(30 * time.Minute)}
	date := civil.Date{Year: 2025, Month: time.March, Day: 10}

	t.Run("local only", func(t *testing.T) {
		a, token, err := f.CreateAppointment("acme", client, date, window, nil)
		require.NoError(t, err)

		assert.NotEqual(t, uuid.Nil, a.ID())
		assert.Equal(t, "acme", a.BusinessSlug())
		assert.Equal(t, appointment.StatusBooked, a.Status())
		assert.False(t, a.Mirrored())
		assert.Equal(t, now, a.CreatedAt())
		assert.Equal(t, token.Digest(), a.TokenDigest())
		assert.NotContains(t, hex.EncodeToString(a.TokenDigest()), token.String())
	})

	t.Run("mirrored", func(t *testing.T) {
		eventID := "evt_123"
		a, _, err := f.CreateAppointment("acme", client, date, window, &eventID)
		require.NoError(t, err)
		assert.True(t, a.Mirrored())
		assert.Equal(t, &eventID, a.ExternalEventID())
	})

	t.Run("empty window", func(t *testing.T) {
		_, _, err := f.CreateAppointment("acme", client, date, slot.Window{Start: start, End: start}, nil)
		assert.ErrorIs(t, err, slot.ErrEmptyWindow)
	})

	t.Run("tokens are unique", func(t *testing.T) {
		_, t1, err := f.CreateAppointment("acme", client, date, window, nil)
		require.NoError(t, err)
		_, t2, err := f.CreateAppointment("acme", client, date, window, nil)
		require.NoError(t, err)
		assert.NotEqual(t, t1.String(), t2.String())
	})
}

func TestReconstructAppointment(t *testing.T) {
	client, _ := appointment.NewClientInfo("Ana", "ana@example.com", "")
	start := time.Date(2025, time.March, 10, 13, 0, 0, 0, time.UTC)
	cancelledAt := start.Add(-time.Hour)

	a := appointment.ReconstructAppointment(uuid.New(), "acme", client, civil.DateOf(start),
		slot.Window{Start: start, End: start.Add(30 * time.Minute)}, nil, []byte{1}, &cancelledAt, start)

	assert.True(t, a.IsCancelled())
	assert.Equal(t, appointment.StatusCancelled, a.Status())
}

var cmpOpts = []cmp.Option{
	cmp.AllowUnexported(appointment.Appointment{}, appointment.ClientInfo{}),
	cmpopts.EquateEmpty(),
}

func TestReconstructMatchesFactory(t *testing.T) {
	now := time.Date(2025, time.March, 1, 12, 0, 0, 0, time.UTC)
	client, err := appointment.NewClientInfo("Ana", "ana@example.com", "+1 809 555 0101")
	require.NoError(t, err)
	start := time.Date(2025, time.March, 10, 13, 0, 0, 0, time.UTC)
	eventID := "evt_9"

	created, _, err := appointment.NewFactory(clock.NewMockClock(now)).CreateAppointment(
		"acme", client, civil.DateOf(start), slot.Window{Start: start, End: start.Add(45 * time.Minute)}, &eventID)
	require.NoError(t, err)

	restored := appointment.ReconstructAppointment(
		created.ID(),
		created.BusinessSlug(),
		appointment.ReconstructClientInfo(client.Name(), client.Email(), client.Phone()),
		created.Date(),
		created.Window(),
		created.ExternalEventID(),
		created.TokenDigest(),
		nil,
		created.CreatedAt(),
	)

	if diff := cmp.Diff(created, restored, cmpOpts...); diff != "" {
		t.Errorf("Appointment mismatch (-want +got):\n%s", diff)
	}
}
