package appointment

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusIsTerminal(t *testing.T) {
	assert.True(t, StatusCompleted.IsTerminal())
	assert.True(t, StatusCancelled.IsTerminal())
	assert.True(t, StatusDeclined.IsTerminal())

	assert.False(t, StatusPending.IsTerminal())
	assert.False(t, StatusConfirmed.IsTerminal())
	assert.False(t, StatusPaid.IsTerminal())
}

func TestStatusIsValid(t *testing.T) {
	assert.True(t, StatusPending.IsValid())
	assert.False(t, Status("archived").IsValid())
	assert.False(t, Status("").IsValid())
}

func TestTransitionGuards(t *testing.T) {
	cases := []struct {
		name  string
		check func(Status) error
		from  Status
		ok    bool
	}{
		{"confirm de pending", CanConfirm, StatusPending, true},
		{"confirm de confirmed repete", CanConfirm, StatusConfirmed, false},
		{"confirm de cancelled", CanConfirm, StatusCancelled, false},

		{"pay de pending", CanPay, StatusPending, true},
		{"pay de confirmed", CanPay, StatusConfirmed, true},
		{"pay de paid repete", CanPay, StatusPaid, false},
		{"pay de completed", CanPay, StatusCompleted, false},

		{"complete de pending", CanComplete, StatusPending, true},
		{"complete de confirmed", CanComplete, StatusConfirmed, true},
		{"complete de paid", CanComplete, StatusPaid, true},
		{"complete de cancelled", CanComplete, StatusCancelled, false},

		{"cancel de pending", CanCancel, StatusPending, true},
		{"cancel de paid", CanCancel, StatusPaid, true},
		{"cancel de completed", CanCancel, StatusCompleted, false},
		{"cancel de cancelled repete", CanCancel, StatusCancelled, false},

		{"decline de pending", CanDecline, StatusPending, true},
		{"decline de confirmed", CanDecline, StatusConfirmed, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.check(tc.from)
			if tc.ok {
				require.NoError(t, err)
				return
			}

			var invalid InvalidTransitionError
			require.ErrorAs(t, err, &invalid)
			assert.Equal(t, tc.from, invalid.From)
		})
	}
}

func TestInitialStatus(t *testing.T) {
	assert.Equal(t, StatusPending, InitialStatus(false))
	assert.Equal(t, StatusConfirmed, InitialStatus(true))
}

func TestFreesSlot(t *testing.T) {
	assert.True(t, FreesSlot(StatusCancelled))
	assert.True(t, FreesSlot(StatusDeclined))
	assert.False(t, FreesSlot(StatusCompleted))
	assert.False(t, FreesSlot(StatusConfirmed))
}
