package http

import (
	"net/http"

	"github.com/MKhiriev/flight-guardian/internal/app"
	"github.com/MKhiriev/flight-guardian/internal/service"
	"github.com/MKhiriev/flight-guardian/internal/validators"
	"github.com/MKhiriev/flight-guardian/models"
	"github.com/go-chi/chi/v5"
)

// entityRoutes mounts the CRUD and list endpoints of one entity kind on r.
// Create is skipped when withCreate is false.
func entityRoutes[T any](r chi.Router, svc service.EntityService[T], withCreate bool, deleteMessage string) {
	if withCreate {
		r.Post("/", createEntity(svc))
	}
	r.Get("/", listEntities(svc))
	r.Get("/{id}", getEntity(svc))
	r.Put("/{id}", updateEntity(svc))
	r.Delete("/{id}", deleteEntity(svc, deleteMessage))
}

func createEntity[T any](svc service.EntityService[T]) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var entity T
		if err := decodeJSON(r, &entity); err != nil {
			writeError(w, r, err)
			return
		}

		created, err := svc.Create(r.Context(), entity)
		if err != nil {
			writeError(w, r, err)
			return
		}

		writeSuccess(w, r, http.StatusOK, app.MsgSuccess, created)
	}
}

func listEntities[T any](svc service.EntityService[T]) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		result, err := svc.List(r.Context(), models.ParseListQuery(r.URL.Query()))
		if err != nil {
			writeError(w, r, err)
			return
		}

		writeSuccess(w, r, http.StatusOK, app.MsgSuccess, result)
	}
}

// listByAirport lists the records of one airport; {id} is the airport id.
func listByAirport[T any](svc service.EntityService[T]) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query := models.ParseListQuery(r.URL.Query()).WithFilter(validators.FieldAirportID, chi.URLParam(r, "id"))

		result, err := svc.List(r.Context(), query)
		if err != nil {
			writeError(w, r, err)
			return
		}

		writeSuccess(w, r, http.StatusOK, app.MsgSuccess, result)
	}
}

func getEntity[T any](svc service.EntityService[T]) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		entity, err := svc.Get(r.Context(), chi.URLParam(r, "id"))
		if err != nil {
			writeError(w, r, err)
			return
		}

		writeSuccess(w, r, http.StatusOK, app.MsgSuccess, entity)
	}
}

func updateEntity[T any](svc service.EntityService[T]) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var entity T
		if err := decodeJSON(r, &entity); err != nil {
			writeError(w, r, err)
			return
		}

		updated, err := svc.Update(r.Context(), chi.URLParam(r, "id"), entity)
		if err != nil {
			writeError(w, r, err)
			return
		}

		writeSuccess(w, r, http.StatusOK, app.MsgSuccess, updated)
	}
}

func deleteEntity[T any](svc service.EntityService[T], message string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		deleted, err := svc.Delete(r.Context(), chi.URLParam(r, "id"))
		if err != nil {
			writeError(w, r, err)
			return
		}

		writeSuccess(w, r, http.StatusOK, message, deleted)
	}
}
