package cli

import (
	"context"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

// Whoami prints the current identity and the access token's claims. The
// token is decoded without verification: the client has no signing key,
// this is a diagnostic view of what the backend issued.
func (a *App) Whoami(_ context.Context) {
	u := a.store.Current()
	if u == nil {
		fmt.Fprintln(a.out, "Not signed in.")
		return
	}

	fmt.Fprintf(a.out, "%s <%s>\n", u.Name, u.Email)
	fmt.Fprintf(a.out, "  id:    %s\n", u.ID)
	fmt.Fprintf(a.out, "  role:  %s\n", u.Role)
	if u.Phone != "" {
		fmt.Fprintf(a.out, "  phone: %s\n", u.Phone)
	}

	token := a.store.Token()
	if token == "" {
		return
	}

	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		fmt.Fprintf(a.out, "  token: not a JWT (%v)\n", err)
		return
	}
	if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
		fmt.Fprintf(a.out, "  token expires: %s\n", exp.Format("2006-01-02 15:04:05"))
	}
	if iss, err := claims.GetIssuer(); err == nil && iss != "" {
		fmt.Fprintf(a.out, "  token issuer:  %s\n", iss)
	}
}
