// token emite un JWT de operador para la autenticación opcional de la API.
//
// Uso: go run ./cmd/token -user ana -role bodeguero [-minutes 480]
// Firma con JWT_SECRET; emisor y expiración por defecto salen de JWT_ISSUER y JWT_EXPIRATION_MINUTES.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/jhoicas/Inventario-stock/pkg/config"
	"github.com/jhoicas/Inventario-stock/pkg/jwt"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Cargar configuración: %v\n", err)
		os.Exit(1)
	}

	user := flag.String("user", "", "identificador del operador")
	role := flag.String("role", jwt.RoleBodeguero, "rol: admin, bodeguero o consulta")
	minutes := flag.Int("minutes", cfg.JWT.Expiration, "minutos de validez")
	flag.Parse()

	if !cfg.JWT.AuthEnabled() {
		fmt.Fprintln(os.Stderr, "JWT_SECRET no está definido: la API no exige tokens")
		os.Exit(1)
	}
	if *user == "" {
		fmt.Fprintln(os.Stderr, "Falta -user")
		os.Exit(2)
	}
	if !jwt.KnownRole(*role) {
		fmt.Fprintf(os.Stderr, "Rol desconocido %q\n", *role)
		os.Exit(2)
	}

	token, err := jwt.Generate(cfg.JWT.Secret, *user, *role, cfg.JWT.Issuer, *minutes)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Generar token: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(token)
}
