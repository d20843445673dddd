package user

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"storefront/pkg/logger"
	"storefront/pkg/otel"
	"storefront/pkg/web"
)

// NotFoundMessage is returned when an id does not resolve to a user.
const NotFoundMessage = "User not found"

// Handler serves the users resource.
type Handler struct {
	repo Repository
	log  *logger.Logger
}

// NewHandler returns a Handler backed by repo.
func NewHandler(repo Repository, log *logger.Logger) *Handler {
	return &Handler{repo: repo, log: log}
}

// Register mounts the users routes on r.
func (h *Handler) Register(r *mux.Router) {
	r.HandleFunc("/users", h.list).Methods(http.MethodGet)
	r.HandleFunc("/users/create", h.create).Methods(http.MethodPost)
	r.HandleFunc("/users/{id:[0-9]+}", h.get).Methods(http.MethodGet)
	r.HandleFunc("/users/{id:[0-9]+}/update", h.update).Methods(http.MethodPut)
	r.HandleFunc("/users/{id:[0-9]+}/delete", h.delete).Methods(http.MethodDelete)
}

// list returns every user.
// @Summary List users
// @Produce json
// @Success 200 {array} user.User
// @Router /users [get]
func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.AddSpan(r.Context(), "user.list")
	defer span.End()

	users, err := h.repo.List(ctx)
	if err != nil {
		h.fail(w, r, "list users", err)
		return
	}
	web.Respond(w, http.StatusOK, users)
}

// create adds a user.
// @Summary Create user
// @Accept json
// @Produce json
// @Param user body user.CreateRequest true "User"
// @Success 201 {object} user.User
// @Failure 400 {object} map[string]string
// @Router /users/create [post]
func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.AddSpan(r.Context(), "user.create")
	defer span.End()

	var req CreateRequest
	if err := web.Decode(r, &req); err != nil {
		h.log.Debug(ctx, "create user rejected", "error", err)
		web.RespondError(w, err)
		return
	}
	u, err := h.repo.Create(ctx, *req.Name)
	if err != nil {
		h.fail(w, r, "create user", err)
		return
	}
	web.Respond(w, http.StatusCreated, u)
}

// get returns one user.
// @Summary Get user
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} user.User
// @Failure 404 {object} map[string]string
// @Router /users/{id} [get]
func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.AddSpan(r.Context(), "user.get")
	defer span.End()

	id, ok := pathID(r)
	if !ok {
		web.RespondError(w, web.NotFound(NotFoundMessage))
		return
	}
	u, err := h.repo.Get(ctx, id)
	if err != nil {
		h.fail(w, r, "get user", err)
		return
	}
	web.Respond(w, http.StatusOK, u)
}

// update renames a user. The id is resolved before the body is validated.
// @Summary Update user
// @Accept json
// @Produce json
// @Param id path int true "User ID"
// @Param user body user.UpdateRequest true "User"
// @Success 200 {object} user.User
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /users/{id}/update [put]
func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.AddSpan(r.Context(), "user.update")
	defer span.End()

	id, ok := pathID(r)
	if !ok {
		web.RespondError(w, web.NotFound(NotFoundMessage))
		return
	}
	if _, err := h.repo.Get(ctx, id); err != nil {
		h.fail(w, r, "get user", err)
		return
	}

	var req UpdateRequest
	if err := web.Decode(r, &req); err != nil {
		h.log.Debug(ctx, "update user rejected", "id", id, "error", err)
		web.RespondError(w, err)
		return
	}
	u, err := h.repo.Update(ctx, id, *req.Name)
	if err != nil {
		h.fail(w, r, "update user", err)
		return
	}
	web.Respond(w, http.StatusOK, u)
}

// delete removes a user. Unknown ids succeed too.
// @Summary Delete user
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} web.Message
// @Router /users/{id}/delete [delete]
func (h *Handler) delete(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.AddSpan(r.Context(), "user.delete")
	defer span.End()

	if id, ok := pathID(r); ok {
		if err := h.repo.Delete(ctx, id); err != nil {
			h.fail(w, r, "delete user", err)
			return
		}
	}
	web.Respond(w, http.StatusOK, web.Message{Message: "User deleted"})
}

func (h *Handler) fail(w http.ResponseWriter, r *http.Request, op string, err error) {
	if errors.Is(err, ErrNotFound) {
		web.RespondError(w, web.NotFound(NotFoundMessage))
		return
	}
	h.log.Error(r.Context(), op, "error", err)
	web.RespondError(w, err)
}

// pathID parses the {id} route variable. The route pattern guarantees digits,
// so false only means the value overflows int.
func pathID(r *http.Request) (int, bool) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	return id, err == nil
}
