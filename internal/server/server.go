package server

import (
	"fmt"
	"net/http"
	"os"
	"strconv"
	"time"

	// Load env file into environments.
	_ "github.com/joho/godotenv/autoload"

	"github.com/Nezar-Gazer-ENG/Kamashka-Backend/internal/config"
	"github.com/Nezar-Gazer-ENG/Kamashka-Backend/internal/database"
	"github.com/Nezar-Gazer-ENG/Kamashka-Backend/internal/mailer"
)

// Server holds the wired dependencies behind the HTTP routes.
type Server struct {
	DB       *database.DBinstanceStruct
	App      *config.App
	Sender   mailer.Sender
	Notifier *mailer.Notifier
}

// NewServer constructs the dependency graph and returns a configured
// http.Server ready to listen.
func NewServer() (*http.Server, error) {
	port, _ := strconv.Atoi(os.Getenv("PORT"))
	if port == 0 {
		port = 8080
	}

	db, err := database.GetMainDB()
	if err != nil {
		return nil, fmt.Errorf("database failed to initialize: %w", err)
	}

	app := config.Load()
	sender := mailer.NewSMTPSender(app.Mail)

	s := &Server{
		DB:       db,
		App:      app,
		Sender:   sender,
		Notifier: mailer.NewNotifier(sender, app),
	}

	// Declare Server config
	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", port),
		Handler:      s.RegisterRoutes(),
		IdleTimeout:  time.Minute,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	return server, nil
}
