// Package audit emits the security-relevant event log: authentication
// attempts and back-office mutations. Events go through zerolog under a
// fixed "audit" marker so they can be filtered out of the request noise.
package audit

import (
	"github.com/rs/zerolog/log"
)

func LoginSuccess(userID, ip string) {
	log.Info().
		Str("audit", "login_success").
		Str("userId", userID).
		Str("ip", ip).
		Msg("admin login")
}

// LoginFailure logs the attempted email; the reason (unknown account or bad
// password) is deliberately not recorded separately.
func LoginFailure(email, ip string) {
	log.Warn().
		Str("audit", "login_failure").
		Str("email", email).
		Str("ip", ip).
		Msg("failed admin login")
}

func Logout(userID, ip string) {
	log.Info().
		Str("audit", "logout").
		Str("userId", userID).
		Str("ip", ip).
		Msg("admin logout")
}

func ContentChange(userID, action, entity, entityID string) {
	log.Info().
		Str("audit", "content_change").
		Str("userId", userID).
		Str("action", action).
		Str("entity", entity).
		Str("entityId", entityID).
		Msg("back-office change")
}
