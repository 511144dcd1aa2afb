package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/iudanet/vaultkeeper/internal/models"
	"github.com/iudanet/vaultkeeper/internal/server/ledger"
	"github.com/iudanet/vaultkeeper/internal/server/storage"
	"github.com/iudanet/vaultkeeper/internal/validation"
	"github.com/iudanet/vaultkeeper/pkg/api"
)

// ObjectHandler чтение объектов леджера
type ObjectHandler struct {
	responder
	ledger Ledger
}

// NewObjectHandler создает handler чтения объектов
func NewObjectHandler(logger *slog.Logger, l Ledger) *ObjectHandler {
	return &ObjectHandler{
		responder: responder{logger: logger},
		ledger:    l,
	}
}

// Object обрабатывает GET /api/v1/objects/{id}
func (h *ObjectHandler) Object(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id := chi.URLParam(r, "id")
	if err := validation.ValidateObjectID(id); err != nil {
		h.sendError(w, err.Error(), http.StatusBadRequest)
		return
	}

	obj, err := h.ledger.Object(ctx, id)
	if err != nil {
		h.readError(w, r, "failed to get object", err)
		return
	}

	h.sendJSON(w, toObjectResponse(obj), http.StatusOK)
}

// Owned обрабатывает GET /api/v1/owners/{address}/objects?type=
// Ответ строится по индексу владельцев и может отставать от коммитов
func (h *ObjectHandler) Owned(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	owner := chi.URLParam(r, "address")
	if err := validation.ValidateAddress(owner); err != nil {
		h.sendError(w, err.Error(), http.StatusBadRequest)
		return
	}

	objectType := r.URL.Query().Get("type")
	switch objectType {
	case "", models.ObjectTypeVault, models.ObjectTypeVaultArt:
	default:
		h.sendError(w, "unknown object type "+objectType, http.StatusBadRequest)
		return
	}

	objects, err := h.ledger.Owned(ctx, owner, objectType)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to list owned objects",
			slog.String("owner", owner),
			slog.Any("error", err))
		h.sendError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	resp := api.OwnedObjectsResponse{
		Owner:   owner,
		Type:    objectType,
		Objects: make([]api.ObjectResponse, 0, len(objects)),
	}
	for _, obj := range objects {
		resp.Objects = append(resp.Objects, toObjectResponse(obj))
	}

	h.sendJSON(w, resp, http.StatusOK)
}

// Summary обрабатывает GET /api/v1/vaults/{id}/summary
func (h *ObjectHandler) Summary(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id := chi.URLParam(r, "id")
	if err := validation.ValidateObjectID(id); err != nil {
		h.sendError(w, err.Error(), http.StatusBadRequest)
		return
	}

	summary, err := h.ledger.Summary(ctx, id)
	if err != nil {
		h.readError(w, r, "failed to summarize vault", err)
		return
	}

	h.sendJSON(w, summary, http.StatusOK)
}

// Fortune обрабатывает GET /api/v1/vaults/{id}/fortune
func (h *ObjectHandler) Fortune(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id := chi.URLParam(r, "id")
	if err := validation.ValidateObjectID(id); err != nil {
		h.sendError(w, err.Error(), http.StatusBadRequest)
		return
	}

	fortune, err := h.ledger.Fortune(ctx, id)
	if err != nil {
		h.readError(w, r, "failed to generate fortune", err)
		return
	}

	h.sendJSON(w, api.FortuneResponse{VaultID: id, Fortune: fortune}, http.StatusOK)
}

// readError отвечает 404 на отсутствующий объект, иначе 500
func (h *ObjectHandler) readError(w http.ResponseWriter, r *http.Request, msg string, err error) {
	if errors.Is(err, storage.ErrObjectNotFound) || errors.Is(err, ledger.ErrNotVault) {
		h.sendError(w, err.Error(), http.StatusNotFound)
		return
	}
	h.logger.ErrorContext(r.Context(), msg, slog.Any("error", err))
	h.sendError(w, "internal server error", http.StatusInternalServerError)
}

func toObjectResponse(obj *models.LedgerObject) api.ObjectResponse {
	return api.ObjectResponse{
		CreatedAt: obj.CreatedAt,
		UpdatedAt: obj.UpdatedAt,
		ObjectID:  obj.ID,
		Type:      obj.Type,
		Owner:     obj.Owner,
		Digest:    obj.Digest,
		Content:   obj.Content,
		Version:   obj.Version,
	}
}
