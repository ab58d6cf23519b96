package plugin

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/xraph/rolodex/auth"
	"github.com/xraph/rolodex/contact"
	"github.com/xraph/rolodex/id"
)

// testPlugin implements Plugin + ContactCreated + UserLoggedIn.
type testPlugin struct {
	contactCreatedCalled bool
	userLoggedInCalled   bool
}

func (t *testPlugin) Name() string { return "test-plugin" }

func (t *testPlugin) OnContactCreated(_ context.Context, _ *contact.Contact) error {
	t.contactCreatedCalled = true
	return nil
}

func (t *testPlugin) OnUserLoggedIn(_ context.Context, _ *auth.Identity) error {
	t.userLoggedInCalled = true
	return nil
}

// minimalPlugin only implements Plugin (no hooks).
type minimalPlugin struct{}

func (m *minimalPlugin) Name() string { return "minimal" }

// failingPlugin returns an error from its hook.
type failingPlugin struct{}

func (f *failingPlugin) Name() string { return "failing" }

func (f *failingPlugin) OnContactDeleted(_ context.Context, _ id.ContactID) error {
	return errors.New("hook failed")
}

func TestRegistryDispatch(t *testing.T) {
	ctx := context.Background()
	reg := NewRegistry(slog.Default())

	tp := &testPlugin{}
	reg.Register(tp)
	reg.Register(&minimalPlugin{})

	if len(reg.Plugins()) != 2 {
		t.Fatalf("expected 2 plugins, got %d", len(reg.Plugins()))
	}

	// Should dispatch ContactCreated to testPlugin only.
	reg.EmitContactCreated(ctx, &contact.Contact{ID: id.NewContactID(), Name: "Ana"})
	if !tp.contactCreatedCalled {
		t.Fatal("OnContactCreated was not called")
	}

	// Should dispatch UserLoggedIn.
	reg.EmitUserLoggedIn(ctx, &auth.Identity{UserID: "u1"})
	if !tp.userLoggedInCalled {
		t.Fatal("OnUserLoggedIn was not called")
	}

	// Should not panic on hooks with no listeners.
	reg.EmitContactUpdated(ctx, nil)
	reg.EmitContactDeleted(ctx, id.NewContactID())
	reg.EmitShutdown(ctx)
}

func TestRegistrySwallowsHookErrors(t *testing.T) {
	reg := NewRegistry(slog.Default())
	reg.Register(&failingPlugin{})

	// Hook errors are logged, never propagated or panicked.
	reg.EmitContactDeleted(context.Background(), id.NewContactID())
}
