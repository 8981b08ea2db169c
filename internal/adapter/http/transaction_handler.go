package http

import (
	"net/http"
	"strconv"
	"time"

	"assettrack/internal/adapter/middleware"
	"assettrack/internal/domain/permission"
	txDomain "assettrack/internal/domain/transaction"
	ucTx "assettrack/internal/usecase/transaction"

	"github.com/labstack/echo/v4"
)

type TransactionHandler struct{ uc *ucTx.Usecase }

func NewTransactionHandler(uc *ucTx.Usecase) *TransactionHandler {
	return &TransactionHandler{uc: uc}
}

func actorFromContext(c echo.Context) (permission.Actor, bool) {
	a, ok := c.Get(middleware.ActorContextKey).(permission.Actor)
	return a, ok
}

func requireActor(c echo.Context) (permission.Actor, error) {
	a, ok := actorFromContext(c)
	if !ok {
		return permission.Actor{}, respondErr(c, http.StatusUnauthorized, "unauthenticated", "actor identity missing")
	}
	return a, nil
}

const dateLayout = "2006-01-02"

func parseDate(s string) *time.Time {
	if s == "" {
		return nil
	}
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return nil
	}
	return &t
}

type createTransactionReq struct {
	AssetID                uint64  `json:"asset_id"                  validate:"required,gte=1"`
	Action                 string  `json:"action"                    validate:"required,txaction"`
	RequestedTo            *uint64 `json:"requested_to"              validate:"omitempty,gte=1"`
	FromLocation           string  `json:"from_location"`
	ToLocation             string  `json:"to_location"`
	Notes                  string  `json:"notes"`
	Priority               string  `json:"priority"                  validate:"omitempty,txpriority"`
	ExpectedCompletionDate string  `json:"expected_completion_date"  validate:"omitempty,datetime=2006-01-02"`
}

func (h *TransactionHandler) Create(c echo.Context) error {
	actor, err := requireActor(c)
	if err != nil {
		return err
	}
	var req createTransactionReq
	if err := c.Bind(&req); err != nil {
		return respondErr(c, http.StatusBadRequest, "invalid body", "invalid body")
	}
	if err := c.Validate(&req); err != nil {
		return respondErr(c, http.StatusBadRequest, "validation failed", ToFieldErrors(err))
	}

	dto, err := h.uc.Create(c.Request().Context(), actor, ucTx.CreateInput{
		AssetID:                req.AssetID,
		Action:                 req.Action,
		RequestedTo:            req.RequestedTo,
		FromLocation:           req.FromLocation,
		ToLocation:             req.ToLocation,
		Notes:                  req.Notes,
		Priority:               req.Priority,
		ExpectedCompletionDate: parseDate(req.ExpectedCompletionDate),
	})
	if err != nil {
		return respondDomainErr(c, err)
	}
	return respondOK(c, http.StatusCreated, "transaction created", dto)
}

func (h *TransactionHandler) Get(c echo.Context) error {
	transactionID := c.Param("transaction_id")
	if transactionID == "" {
		return respondErr(c, http.StatusBadRequest, "missing transaction_id path param", nil)
	}
	dto, err := h.uc.Get(c.Request().Context(), transactionID)
	if err != nil {
		return respondDomainErr(c, err)
	}
	return respondOK(c, http.StatusOK, "transaction", dto)
}

func (h *TransactionHandler) List(c echo.Context) error {
	var f txDomain.ListFilter
	if v := c.QueryParam("asset_id"); v != "" {
		if n, err := strconv.ParseUint(v, 10, 64); err == nil {
			f.AssetID = &n
		}
	}
	if v := c.QueryParam("status"); v != "" {
		st := txDomain.Status(v)
		if !st.Valid() {
			return respondErr(c, http.StatusBadRequest, "invalid status filter", nil)
		}
		f.Status = &st
	}
	if v := c.QueryParam("requested_by"); v != "" {
		if n, err := strconv.ParseUint(v, 10, 64); err == nil {
			f.RequestedBy = &n
		}
	}
	if v := c.QueryParam("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 && n <= 100 {
			f.Limit = n
		}
	}
	if v := c.QueryParam("offset"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			f.Offset = n
		}
	}
	items, err := h.uc.List(c.Request().Context(), f)
	if err != nil {
		return respondDomainErr(c, err)
	}
	return respondOK(c, http.StatusOK, "transactions", items)
}

type changeStatusReq struct {
	Status     string `json:"status"      validate:"required,txstatus"`
	AdminNotes string `json:"admin_notes"`
}

func (h *TransactionHandler) ChangeStatus(c echo.Context) error {
	actor, err := requireActor(c)
	if err != nil {
		return err
	}
	transactionID := c.Param("transaction_id")
	if transactionID == "" {
		return respondErr(c, http.StatusBadRequest, "missing transaction_id path param", nil)
	}
	var req changeStatusReq
	if err := c.Bind(&req); err != nil {
		return respondErr(c, http.StatusBadRequest, "invalid body", "invalid body")
	}
	if err := c.Validate(&req); err != nil {
		return respondErr(c, http.StatusBadRequest, "validation failed", ToFieldErrors(err))
	}

	dto, err := h.uc.RequestTransition(c.Request().Context(), actor, transactionID, txDomain.Status(req.Status), req.AdminNotes)
	if err != nil {
		return respondDomainErr(c, err)
	}
	return respondOK(c, http.StatusOK, "status updated", dto)
}

type respondReq struct {
	AdminNotes string `json:"admin_notes"`
	Reason     string `json:"reason"`
}

func (h *TransactionHandler) Accept(c echo.Context) error {
	actor, err := requireActor(c)
	if err != nil {
		return err
	}
	transactionID := c.Param("transaction_id")
	if transactionID == "" {
		return respondErr(c, http.StatusBadRequest, "missing transaction_id path param", nil)
	}
	var req respondReq
	if err := c.Bind(&req); err != nil {
		return respondErr(c, http.StatusBadRequest, "invalid body", "invalid body")
	}

	dto, err := h.uc.Accept(c.Request().Context(), actor, transactionID, req.AdminNotes)
	if err != nil {
		return respondDomainErr(c, err)
	}
	return respondOK(c, http.StatusOK, "transaction accepted", dto)
}

func (h *TransactionHandler) Reject(c echo.Context) error {
	actor, err := requireActor(c)
	if err != nil {
		return err
	}
	transactionID := c.Param("transaction_id")
	if transactionID == "" {
		return respondErr(c, http.StatusBadRequest, "missing transaction_id path param", nil)
	}
	var req respondReq
	if err := c.Bind(&req); err != nil {
		return respondErr(c, http.StatusBadRequest, "invalid body", "invalid body")
	}

	dto, err := h.uc.Reject(c.Request().Context(), actor, transactionID, req.AdminNotes, req.Reason)
	if err != nil {
		return respondDomainErr(c, err)
	}
	return respondOK(c, http.StatusOK, "transaction rejected", dto)
}

func (h *TransactionHandler) Complete(c echo.Context) error {
	actor, err := requireActor(c)
	if err != nil {
		return err
	}
	transactionID := c.Param("transaction_id")
	if transactionID == "" {
		return respondErr(c, http.StatusBadRequest, "missing transaction_id path param", nil)
	}
	var req respondReq
	if err := c.Bind(&req); err != nil {
		return respondErr(c, http.StatusBadRequest, "invalid body", "invalid body")
	}

	dto, err := h.uc.Complete(c.Request().Context(), actor, transactionID, req.AdminNotes)
	if err != nil {
		return respondDomainErr(c, err)
	}
	return respondOK(c, http.StatusOK, "transaction completed", dto)
}

type updateTransactionReq struct {
	Notes                  *string `json:"notes"`
	Priority               *string `json:"priority"                  validate:"omitempty,txpriority"`
	FromLocation           *string `json:"from_location"`
	ToLocation             *string `json:"to_location"`
	ExpectedCompletionDate *string `json:"expected_completion_date"  validate:"omitempty,datetime=2006-01-02"`
}

func (h *TransactionHandler) Update(c echo.Context) error {
	actor, err := requireActor(c)
	if err != nil {
		return err
	}
	transactionID := c.Param("transaction_id")
	if transactionID == "" {
		return respondErr(c, http.StatusBadRequest, "missing transaction_id path param", nil)
	}
	var req updateTransactionReq
	if err := c.Bind(&req); err != nil {
		return respondErr(c, http.StatusBadRequest, "invalid body", "invalid body")
	}
	if err := c.Validate(&req); err != nil {
		return respondErr(c, http.StatusBadRequest, "validation failed", ToFieldErrors(err))
	}

	in := ucTx.UpdateInput{
		Notes:        req.Notes,
		Priority:     req.Priority,
		FromLocation: req.FromLocation,
		ToLocation:   req.ToLocation,
	}
	if req.ExpectedCompletionDate != nil {
		in.ExpectedCompletionDate = parseDate(*req.ExpectedCompletionDate)
	}
	dto, err := h.uc.Update(c.Request().Context(), actor, transactionID, in)
	if err != nil {
		return respondDomainErr(c, err)
	}
	return respondOK(c, http.StatusOK, "transaction updated", dto)
}

func (h *TransactionHandler) Delete(c echo.Context) error {
	actor, err := requireActor(c)
	if err != nil {
		return err
	}
	transactionID := c.Param("transaction_id")
	if transactionID == "" {
		return respondErr(c, http.StatusBadRequest, "missing transaction_id path param", nil)
	}
	if err := h.uc.Delete(c.Request().Context(), actor, transactionID); err != nil {
		return respondDomainErr(c, err)
	}
	return respondOK(c, http.StatusOK, "transaction deleted", nil)
}
