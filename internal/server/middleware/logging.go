package middleware

import (
	"log/slog"
	"net/http"
	"strings"
	"time"
)

// statusRecorder оборачивает http.ResponseWriter, чтобы снять
// код ответа и объем отданных байт после обработки
type statusRecorder struct {
	http.ResponseWriter
	status int
	bytes  int64
}

func (sr *statusRecorder) WriteHeader(code int) {
	sr.status = code
	sr.ResponseWriter.WriteHeader(code)
}

func (sr *statusRecorder) Write(p []byte) (int, error) {
	n, err := sr.ResponseWriter.Write(p)
	sr.bytes += int64(n)
	return n, err
}

// LoggingMiddleware логирует каждый HTTP запрос: метод, путь, статус,
// длительность и размер ответа. Тела запросов и заголовки авторизации
// в лог не попадают.
func LoggingMiddleware(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			rec := &statusRecorder{
				ResponseWriter: w,
				// WriteHeader может не вызываться вовсе
				status: http.StatusOK,
			}

			next.ServeHTTP(rec, r)

			logger.Log(r.Context(), levelForStatus(rec.status), "request handled",
				"method", r.Method,
				"path", maskPath(r.URL.Path),
				"remote_addr", r.RemoteAddr,
				"user_agent", r.UserAgent(),
				"status", rec.status,
				"duration_ms", time.Since(start).Milliseconds(),
				"resp_bytes", rec.bytes,
			)
		})
	}
}

// levelForStatus выбирает уровень лога по классу статуса
func levelForStatus(status int) slog.Level {
	switch {
	case status >= 500:
		return slog.LevelError
	case status >= 400:
		return slog.LevelWarn
	default:
		return slog.LevelInfo
	}
}

// saltPathPrefix — единственный маршрут, несущий имя аккаунта прямо
// в пути; имена пользователей не должны оседать в логах сервера
const saltPathPrefix = "/api/v1/auth/salt/"

// maskPath скрывает username в пути запроса соли
func maskPath(path string) string {
	if strings.HasPrefix(path, saltPathPrefix) && len(path) > len(saltPathPrefix) {
		return saltPathPrefix + "***"
	}
	return path
}

// LoggingWithSkip не логирует перечисленные пути. Нужен для health
// check, который мониторинг дергает постоянно и который иначе
// заполняет лог шумом.
func LoggingWithSkip(logger *slog.Logger, skipPaths []string) func(http.Handler) http.Handler {
	skip := make(map[string]struct{}, len(skipPaths))
	for _, path := range skipPaths {
		skip[path] = struct{}{}
	}

	return func(next http.Handler) http.Handler {
		logged := LoggingMiddleware(logger)(next)

		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if _, ok := skip[r.URL.Path]; ok {
				next.ServeHTTP(w, r)
				return
			}
			logged.ServeHTTP(w, r)
		})
	}
}
