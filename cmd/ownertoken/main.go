package main

import (
	"flag"
	"fmt"
	"os"

	"agenda-engine/internal/pkg/config"
	"agenda-engine/internal/pkg/jwt"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Issues an owner access token for a business. Prints the token on stdout.
func main() {
	slug := flag.String("slug", "", "business slug the token is scoped to")
	flag.Parse()

	if *slug == "" {
		fmt.Fprintln(os.Stderr, "usage: ownertoken -slug <business>")
		os.Exit(2)
	}

	_ = godotenv.Load()
	var cfg config.JWTConfig
	if err := envconfig.Process("", &cfg); err != nil {
		fmt.Fprintf(os.Stderr, "failed to process env config: %v\n", err)
		os.Exit(1)
	}

	token, err := jwt.NewService(cfg.Secret, cfg.Issuer, cfg.Duration, cfg.StateTTL).GenerateToken(*slug)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to sign token: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(token)
}
