package services_test

import (
	"testing"
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/core/domain/services"
	"storefront/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustActor(t *testing.T, id kernel.UUID, role kernel.Role) kernel.Actor {
	t.Helper()
	a, err := kernel.NewActor(id, role)
	require.NoError(t, err)
	return a
}

func TestRoleGate(t *testing.T) {
	gate := services.NewRoleGate()
	ownerID := kernel.NewUUID()
	o, err := order.NewOrder(kernel.NewUUID(), order.Owner{UserID: ownerID, Email: "buyer@example.com"},
		[]order.LineItem{{Product: serviceProduct(), Quantity: 1}}, time.Now(), defaultQR)
	require.NoError(t, err)

	ownerActor := mustActor(t, ownerID, kernel.RoleBuyer)
	otherBuyer := mustActor(t, kernel.NewUUID(), kernel.RoleBuyer)
	admin := mustActor(t, kernel.NewUUID(), kernel.RoleAdmin)

	tests := []struct {
		name    string
		actor   kernel.Actor
		trigger order.Trigger
		wantErr error
	}{
		{"owner uploads document", ownerActor, order.TriggerDocumentUpload, nil},
		{"owner downloads report", ownerActor, order.TriggerReportDownload, nil},
		{"other buyer uploads document", otherBuyer, order.TriggerDocumentUpload, errs.ErrObjectNotFound},
		{"other buyer downloads report", otherBuyer, order.TriggerReportDownload, errs.ErrObjectNotFound},
		{"other buyer confirms payment", otherBuyer, order.TriggerPaymentConfirmation, errs.ErrObjectNotFound},
		{"admin uploads document", admin, order.TriggerDocumentUpload, errs.ErrAccessDenied},
		{"admin uploads report", admin, order.TriggerReportUpload, nil},
		{"admin confirms payment", admin, order.TriggerPaymentConfirmation, nil},
		{"admin selects status", admin, order.TriggerStatusSelection, nil},
		{"owner confirms payment", ownerActor, order.TriggerPaymentConfirmation, errs.ErrAccessDenied},
		{"owner selects status", ownerActor, order.TriggerStatusSelection, errs.ErrAccessDenied},
		{"unknown trigger", admin, order.TriggerUnknown, errs.ErrAccessDenied},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := gate.Authorize(tt.actor, o, tt.trigger)
			if tt.wantErr == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tt.wantErr)
		})
	}

	t.Run("zero actor", func(t *testing.T) {
		require.ErrorIs(t, gate.Authorize(kernel.Actor{}, o, order.TriggerReportUpload), kernel.ErrActorIsNotConstructed)
	})

	t.Run("visibility", func(t *testing.T) {
		assert.True(t, gate.CanView(ownerActor, o))
		assert.True(t, gate.CanView(admin, o))
		assert.False(t, gate.CanView(otherBuyer, o))
	})
}

func TestRoleGate_AuthorizeRole(t *testing.T) {
	gate := services.NewRoleGate()

	require.NoError(t, gate.AuthorizeRole(mustActor(t, kernel.NewUUID(), kernel.RoleBuyer), order.TriggerCheckout))
	require.ErrorIs(t, gate.AuthorizeRole(mustActor(t, kernel.NewUUID(), kernel.RoleAdmin), order.TriggerCheckout), errs.ErrAccessDenied)
}
