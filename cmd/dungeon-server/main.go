package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/Mshel/dungeoneer/internal/config"
	"github.com/Mshel/dungeoneer/internal/ui"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/activeterm"
	"github.com/charmbracelet/wish/bubbletea"
	"github.com/charmbracelet/wish/logging"
)

const (
	envHostKeyPath = "DUNGEON_PRIVATE_KEY_PATH"
	envListen      = "DUNGEON_LISTEN"
)

type connectionLimiter struct {
	mu        sync.Mutex
	ipCounter map[string]int
	limit     int
}

func newConnectionLimiter(limit int) *connectionLimiter {
	return &connectionLimiter{ipCounter: make(map[string]int), limit: limit}
}

func getIP(s ssh.Session) string {
	if addr, ok := s.RemoteAddr().(*net.TCPAddr); ok {
		return addr.IP.String()
	}
	return s.RemoteAddr().String()
}

// acquire counts a connection for ip unless the ip is already at the limit.
func (l *connectionLimiter) acquire(ip string) (int, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.ipCounter[ip] >= l.limit {
		return l.ipCounter[ip], false
	}
	l.ipCounter[ip]++
	return l.ipCounter[ip], true
}

func (l *connectionLimiter) release(ip string) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.ipCounter[ip]--
	if l.ipCounter[ip] <= 0 {
		delete(l.ipCounter, ip)
		return 0
	}
	return l.ipCounter[ip]
}

func (l *connectionLimiter) middleware(next ssh.Handler) ssh.Handler {
	return func(s ssh.Session) {
		log.Debug("ConnectionLimiterMiddleware running for new authenticated session.")

		ip := getIP(s)
		count, ok := l.acquire(ip)
		if !ok {
			log.Warn("Connection denied: IP limit exceeded", "ip", ip, "attempted_count", count+1, "current_limit", l.limit)
			errorMessage := fmt.Sprintf("Too many active connections from your IP (%d/%d). Please try again later.\r\n", count+1, l.limit)
			s.Write([]byte(errorMessage))
			s.Close()
			return
		}

		log.Info("Connection accepted", "ip", ip, "current_count", count, "limit", l.limit)
		next(s)
		log.Info("Connection closed and counter decremented", "ip", ip, "count_after", l.release(ip))
	}
}

func main() {
	cfg, err := config.FromEnvironment()
	if err != nil {
		log.Fatal("Failed to load config", "error", err)
	}
	log.SetLevel(cfg.LogLevel())

	hostKeyPath := cfg.Server.HostKeyPath
	if p := os.Getenv(envHostKeyPath); p != "" {
		hostKeyPath = p
	}

	address := cfg.Address()
	if a := os.Getenv(envListen); a != "" {
		address = a
	}

	limiter := newConnectionLimiter(cfg.Server.MaxConnectionsPerIP)

	sshServer, serverCreateErr := wish.NewServer(
		wish.WithAddress(address),
		wish.WithHostKeyPath(hostKeyPath),
		wish.WithMiddleware(
			bubbletea.Middleware(viewHandler(cfg)),
			activeterm.Middleware(),
			limiter.middleware,
			logging.Middleware(),
		),
	)
	if serverCreateErr != nil {
		log.Fatal("Failed to create ssh server", "error", serverCreateErr)
	}

	serverDoneChannel := make(chan os.Signal, 1)
	signal.Notify(serverDoneChannel, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)
	log.Info("Starting SSH server", "address", address, "env", cfg.Env, "dev", cfg.IsDev())
	go func() {
		if err := sshServer.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			log.Error("Could not start server", "error", err)
			serverDoneChannel <- nil
		}
	}()

	<-serverDoneChannel

	log.Info("Stopping SSH server")
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := sshServer.Shutdown(ctx); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
		log.Error("Could not stop server", "error", err)
	}
}

// viewHandler gives every SSH session its own controller and scene.
func viewHandler(cfg *config.Config) bubbletea.Handler {
	return func(sshSession ssh.Session) (tea.Model, []tea.ProgramOption) {
		pty, _, _ := sshSession.Pty()
		logger := log.Default().With("user", sshSession.User(), "remote", getIP(sshSession))
		controllerModel := ui.NewControllerModel(cfg.SceneOptions(logger), pty.Window.Width, pty.Window.Height)

		return controllerModel, []tea.ProgramOption{tea.WithAltScreen(), tea.WithMouseAllMotion()}
	}
}
