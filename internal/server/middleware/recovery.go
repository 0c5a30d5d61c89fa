package middleware

import (
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"
)

// RecoveryMiddleware перехватывает panic из обработчиков, логирует
// стек и отвечает 500. Одна сломанная ручка не должна ронять весь
// сервер синхронизации.
func RecoveryMiddleware(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					logPanic(logger, r, rec)
					// Клиенту детали не раскрываем
					http.Error(w, "Internal Server Error", http.StatusInternalServerError)
				}
			}()

			next.ServeHTTP(w, r)
		})
	}
}

// RecoveryWithCustomError отвечает на panic JSON-телом с заданным
// сообщением вместо plain-text ответа
func RecoveryWithCustomError(logger *slog.Logger, errorMessage string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					logPanic(logger, r, rec)

					w.Header().Set("Content-Type", "application/json")
					w.WriteHeader(http.StatusInternalServerError)
					_, _ = fmt.Fprintf(w, `{"error":"%s"}`, errorMessage)
				}
			}()

			next.ServeHTTP(w, r)
		})
	}
}

func logPanic(logger *slog.Logger, r *http.Request, rec any) {
	logger.Error("Panic recovered",
		"error", rec,
		"method", r.Method,
		"path", r.URL.Path,
		"remote_addr", r.RemoteAddr,
		"stack", string(debug.Stack()),
	)
}
