package entity

import (
	"testing"

	"github.com/pkg/errors"
)

func TestResolveAccessState_PriorityOrder(t *testing.T) {
	t.Parallel()

	profile := &UserProfile{Name: "Asha"}

	tests := []struct {
		name string
		sig  AccessSignals
		want AccessState
	}{
		{
			name: "identity probe not settled",
			sig:  AccessSignals{},
			want: AccessInitializing,
		},
		{
			name: "settled without identity",
			sig:  AccessSignals{IdentitySettled: true},
			want: AccessUnauthenticated,
		},
		{
			name: "identity present, both checks pending",
			sig: AccessSignals{
				IdentitySettled: true,
				Identity:        "principal-1",
			},
			want: AccessInitializing,
		},
		{
			name: "profile absent but role check still pending stays initializing",
			sig: AccessSignals{
				IdentitySettled: true,
				Identity:        "principal-1",
				ProfileStatus:   SignalReady,
				Profile:         nil,
				RoleStatus:      SignalPending,
			},
			want: AccessInitializing,
		},
		{
			name: "role settled but profile fetch still pending stays initializing",
			sig: AccessSignals{
				IdentitySettled: true,
				Identity:        "principal-1",
				ProfileStatus:   SignalPending,
				RoleStatus:      SignalReady,
				IsAdmin:         true,
			},
			want: AccessInitializing,
		},
		{
			name: "profile absent with role settled",
			sig: AccessSignals{
				IdentitySettled: true,
				Identity:        "principal-1",
				ProfileStatus:   SignalReady,
				Profile:         nil,
				RoleStatus:      SignalReady,
				IsAdmin:         true,
			},
			want: AccessProfileIncomplete,
		},
		{
			name: "profile present, not admin",
			sig: AccessSignals{
				IdentitySettled: true,
				Identity:        "principal-1",
				ProfileStatus:   SignalReady,
				Profile:         profile,
				RoleStatus:      SignalReady,
				IsAdmin:         false,
			},
			want: AccessUnauthorized,
		},
		{
			name: "profile present, admin",
			sig: AccessSignals{
				IdentitySettled: true,
				Identity:        "principal-1",
				ProfileStatus:   SignalReady,
				Profile:         profile,
				RoleStatus:      SignalReady,
				IsAdmin:         true,
			},
			want: AccessAuthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := ResolveAccessState(tt.sig)
			if got.State != tt.want {
				t.Fatalf("ResolveAccessState() = %s, want %s", got.State, tt.want)
			}
			if got.Cause != nil {
				t.Fatalf("ResolveAccessState() cause = %v, want nil", got.Cause)
			}
		})
	}
}

func TestResolveAccessState_FetchFailures(t *testing.T) {
	t.Parallel()

	profileErr := errors.New("profile fetch failed")
	roleErr := errors.New("role check failed")

	t.Run("failed profile fetch is an error, not loading", func(t *testing.T) {
		t.Parallel()

		got := ResolveAccessState(AccessSignals{
			IdentitySettled: true,
			Identity:        "principal-1",
			ProfileStatus:   SignalFailed,
			ProfileErr:      profileErr,
			RoleStatus:      SignalPending,
		})
		if got.State != AccessError {
			t.Fatalf("state = %s, want %s", got.State, AccessError)
		}
		if !errors.Is(got.Cause, profileErr) {
			t.Fatalf("cause = %v, want %v", got.Cause, profileErr)
		}
	})

	t.Run("failed role check never falls through to unauthorized", func(t *testing.T) {
		t.Parallel()

		got := ResolveAccessState(AccessSignals{
			IdentitySettled: true,
			Identity:        "principal-1",
			ProfileStatus:   SignalReady,
			Profile:         &UserProfile{Name: "Asha"},
			RoleStatus:      SignalFailed,
			RoleErr:         roleErr,
		})
		if got.State != AccessError {
			t.Fatalf("state = %s, want %s", got.State, AccessError)
		}
		if !errors.Is(got.Cause, roleErr) {
			t.Fatalf("cause = %v, want %v", got.Cause, roleErr)
		}
	})

	t.Run("unauthenticated wins over a failed check", func(t *testing.T) {
		t.Parallel()

		got := ResolveAccessState(AccessSignals{
			IdentitySettled: true,
			ProfileStatus:   SignalFailed,
			ProfileErr:      profileErr,
		})
		if got.State != AccessUnauthenticated {
			t.Fatalf("state = %s, want %s", got.State, AccessUnauthenticated)
		}
	})
}
