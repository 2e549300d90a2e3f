// issue_token emite un JWT de prueba para llamar a /business en local.
//
// Uso:
//
//	go run ./cmd/issue_token -restaurant <id> -role MANAGER [-user u-1] [-minutes 60]
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/jhoicas/BarApp-api/internal/domain/access"
	"github.com/jhoicas/BarApp-api/internal/domain/business"
	"github.com/jhoicas/BarApp-api/pkg/config"
	"github.com/jhoicas/BarApp-api/pkg/jwt"
)

func main() {
	restaurantID := flag.String("restaurant", "", "restaurante del trabajador (obligatorio)")
	role := flag.String("role", "", "rol: "+strings.Join(business.WorkerRoles.Values(), ", ")+" o SYSTEM")
	userID := flag.String("user", "dev-user", "id del trabajador")
	minutes := flag.Int("minutes", 0, "vigencia en minutos (por defecto JWT_EXPIRATION_MINUTES)")
	flag.Parse()

	r, err := checkRole(*role)
	if err != nil || *restaurantID == "" {
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
		}
		fmt.Fprintln(os.Stderr, "uso: issue_token -restaurant <id> -role <rol> [-user id] [-minutes n]")
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "cargar configuración: %v\n", err)
		os.Exit(1)
	}
	exp := cfg.JWT.Expiration
	if *minutes > 0 {
		exp = *minutes
	}

	token, err := jwt.Generate(cfg.JWT.Secret, *userID, *restaurantID, r, cfg.JWT.Issuer, exp)
	if err != nil {
		fmt.Fprintf(os.Stderr, "firmar token: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(token)
}

// checkRole normaliza a mayúsculas y exige un rol conocido.
func checkRole(role string) (string, error) {
	r := strings.ToUpper(strings.TrimSpace(role))
	if r == string(access.RoleSystem) {
		return r, nil
	}
	if err := business.WorkerRoles.Validate(r); err != nil {
		return "", err
	}
	return r, nil
}
