// Command devtoken prints a signed bearer token for local testing. Tokens
// are normally issued by the external identity provider.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/BruksfildServices01/agenda-api/internal/auth"
	"github.com/BruksfildServices01/agenda-api/internal/authz"
	"github.com/BruksfildServices01/agenda-api/internal/config"
	"github.com/BruksfildServices01/agenda-api/internal/models"
)

func main() {
	cfg := config.Load()

	userID := flag.String("user", "", "user id (token subject)")
	role := flag.String("role", models.RoleClient, "CLIENT, PROFESSIONAL or ADMIN")
	ttl := flag.Duration("ttl", 24*time.Hour, "token lifetime")
	flag.Parse()

	if *userID == "" || !authz.ValidRole(*role) {
		flag.Usage()
		os.Exit(2)
	}

	tok, err := auth.Sign(cfg.JWTSecret, authz.Identity{UserID: *userID, Role: *role}, *ttl)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	fmt.Println(tok)
}
