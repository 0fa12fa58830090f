package loader_test

import (
	"errors"
	"testing"

	"invoice-verifier/core/loader"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

type stubFeature struct {
	name    string
	enabled bool
	loadErr error
	loaded  bool
}

func (f *stubFeature) Name() string    { return f.name }
func (f *stubFeature) IsEnabled() bool { return f.enabled }
func (f *stubFeature) Load(app fiber.Router) error {
	f.loaded = true
	return f.loadErr
}

func TestManager_LoadAll(t *testing.T) {
	app := fiber.New()

	t.Run("SkipsDisabled", func(t *testing.T) {
		m := loader.NewManager()
		enabled := &stubFeature{name: "a", enabled: true}
		disabled := &stubFeature{name: "b", enabled: false}
		m.Register(enabled)
		m.Register(disabled)

		err := m.LoadAll(app)
		assert.NoError(t, err)
		assert.True(t, enabled.loaded)
		assert.False(t, disabled.loaded)
	})

	t.Run("FailsFast", func(t *testing.T) {
		m := loader.NewManager()
		failing := &stubFeature{name: "bad", enabled: true, loadErr: errors.New("boom")}
		after := &stubFeature{name: "after", enabled: true}
		m.Register(failing)
		m.Register(after)

		err := m.LoadAll(app)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "bad")
		assert.False(t, after.loaded)
	})
}
