package main

import (
	"fmt"
	"log"
	"os"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg, err := LoadConfig()
	if err != nil {
		log.Fatal(err)
	}
	gin.SetMode(cfg.GinMode)

	db := initDB(cfg)

	// Support a lightweight migrate command: `./blogapi migrate`
	// initDB already ran AutoMigrate; this just exits afterwards. Useful
	// for CI or manual DB setup.
	if len(os.Args) > 1 && os.Args[1] == "migrate" {
		fmt.Println("migration completed")
		return
	}

	srv := newServer(NewUserStore(db), NewBlogStore(db), newTokenIssuer(cfg))

	r := gin.Default()
	srv.setupRoutes(r)

	if err := r.Run(cfg.Addr); err != nil {
		log.Fatal(err)
	}
}
