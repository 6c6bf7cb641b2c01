// Command newsportald runs the news portal backend: it loads the
// persisted state, wires the stores behind the HTTP surface, and
// serves until interrupted.
package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/divyanshyadav2828/DIGITAL-DESK-2/internal/api"
	"github.com/divyanshyadav2828/DIGITAL-DESK-2/internal/model"
	"github.com/divyanshyadav2828/DIGITAL-DESK-2/internal/session"
	"github.com/divyanshyadav2828/DIGITAL-DESK-2/internal/store"
	"github.com/divyanshyadav2828/DIGITAL-DESK-2/internal/users"
)

func main() {
	godotenv.Load()

	addr := envOr("NEWSPORTAL_ADDR", ":3000")
	dataDir := envOr("NEWSPORTAL_DATA_DIR", "./data")
	publicDir := envOr("NEWSPORTAL_PUBLIC_DIR", "./public")

	persister, err := store.NewPersistence(dataDir)
	if err != nil {
		log.Fatalf("Failed to initialize persistence: %v", err)
	}
	snapshot, err := persister.Load()
	if err != nil {
		// Durability is best-effort: keep serving from empty defaults.
		slog.Warn("could not load news store, starting empty", "error", err)
		snapshot = nil
	}
	newsStore := store.NewNewsStore(snapshot, persister)

	userFile, err := users.NewCSVFile(dataDir)
	if err != nil {
		log.Fatalf("Failed to initialize user table: %v", err)
	}
	accounts, err := userFile.Load()
	if err != nil {
		slog.Warn("could not load user table, starting empty", "error", err)
		accounts = nil
	}
	userStore := users.NewUserStore(accounts, userFile)
	seedEditor(userStore)

	auth := session.NewAuthenticator(userStore)
	h := api.NewHandler(newsStore, userStore, auth, publicDir)

	r := gin.Default()

	allowedOrigins := []string{"http://localhost:3000"}
	if frontendURL := os.Getenv("FRONTEND_URL"); frontendURL != "" {
		allowedOrigins = append(allowedOrigins, frontendURL)
	}
	r.Use(cors.New(cors.Config{
		AllowOrigins:     allowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type"},
		AllowCredentials: true, // the session rides on a cookie
	}))

	h.Register(r)

	srv := &http.Server{
		Addr:    addr,
		Handler: auth.Manager().LoadAndSave(r),
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		fmt.Println("\nShutdown signal received.")
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		srv.Shutdown(ctx)
	}()

	fmt.Printf("News portal listening on %s\n", addr)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatalf("HTTP server failed: %v", err)
	}

	// Final flush so a snapshot written mid-request is not the last word.
	if err := persister.Save(newsStore.Snapshot()); err != nil {
		slog.Error("final snapshot flush", "error", err)
	}
	fmt.Println("Persistence complete. Exiting.")
}

// seedEditor creates a first editor account on a fresh deployment so
// the portal is administrable before any users exist.
func seedEditor(s *users.UserStore) {
	if s.Count() > 0 {
		return
	}
	password := os.Getenv("NEWSPORTAL_ADMIN_PASSWORD")
	if password == "" {
		slog.Warn("no accounts configured; set NEWSPORTAL_ADMIN_PASSWORD to seed an editor")
		return
	}
	if _, err := s.Create("admin", password, model.RoleEditor); err != nil {
		slog.Error("seeding editor account", "error", err)
		return
	}
	slog.Info("seeded initial editor account", "id", "admin")
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
