package route

import (
	"net/http"

	"github.com/gorilla/mux"
)

// Template возвращает шаблон mux-роута (/deliveries/{id}/accept), а если роут не найден - сырой путь.
// Шаблон нужен, чтобы метки метрик и политики RBAC не зависели от конкретных id.
func Template(r *http.Request) string {
	if current := mux.CurrentRoute(r); current != nil {
		if template, err := current.GetPathTemplate(); err == nil {
			return template
		}
	}
	return r.URL.Path
}
