package commands_test

import (
	"testing"

	"storefront/internal/core/application/usecases/commands"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/settings"
	"storefront/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestUpdateSettingsCommandHandler(t *testing.T) {
	admin := actorOf(t, kernel.NewUUID(), kernel.RoleAdmin)
	const newQR = "https://cdn.example.com/qris-2026.png"

	t.Run("replaces the stored URL", func(t *testing.T) {
		ctx := t.Context()
		current, _ := settings.NewAdminSettings(testQR)
		uow := newMockUoW()
		uow.expectTx(ctx, true)
		uow.settings.On("Get", ctx).Return(current, nil).Once()
		uow.settings.On("Save", ctx, current).Return(nil).Once()

		cmd, err := commands.NewUpdateSettingsCommand(admin, "  "+newQR+" ")
		require.NoError(t, err)
		require.NoError(t, commands.NewUpdateSettingsCommandHandler(uowFactory[commands.SettingsUoW]{uow}, testQR).Handle(ctx, cmd))

		assert.Equal(t, newQR, current.QRISImageURL())
		uow.assertAll(t)
	})

	t.Run("creates settings when none exist", func(t *testing.T) {
		ctx := t.Context()
		uow := newMockUoW()
		uow.expectTx(ctx, true)
		uow.settings.On("Get", ctx).Return(nil, errs.NewObjectNotFoundError("settings", "admin")).Once()
		uow.settings.On("Save", ctx, mock.MatchedBy(func(s *settings.AdminSettings) bool {
			return s.QRISImageURL() == newQR
		})).Return(nil).Once()

		cmd, _ := commands.NewUpdateSettingsCommand(admin, newQR)
		require.NoError(t, commands.NewUpdateSettingsCommandHandler(uowFactory[commands.SettingsUoW]{uow}, testQR).Handle(ctx, cmd))
		uow.assertAll(t)
	})

	t.Run("buyer is denied", func(t *testing.T) {
		uow := newMockUoW()
		cmd, _ := commands.NewUpdateSettingsCommand(actorOf(t, kernel.NewUUID(), kernel.RoleBuyer), newQR)
		err := commands.NewUpdateSettingsCommandHandler(uowFactory[commands.SettingsUoW]{uow}, testQR).Handle(t.Context(), cmd)

		require.ErrorIs(t, err, errs.ErrAccessDenied)
		uow.assertAll(t)
	})

	t.Run("invalid URL", func(t *testing.T) {
		_, err := commands.NewUpdateSettingsCommand(admin, "not a url")
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)

		_, err = commands.NewUpdateSettingsCommand(admin, "   ")
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}
