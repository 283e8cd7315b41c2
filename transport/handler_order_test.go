package transport_test

import (
	"bytes"
	"context"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/mock"
	"github.com/vapehero/wholesale-backend/cmd/config"
	"github.com/vapehero/wholesale-backend/constant"
	ordermocks "github.com/vapehero/wholesale-backend/mocks/application/order"
	"github.com/vapehero/wholesale-backend/transport"
	cerr "github.com/vapehero/wholesale-backend/utils/errors"
)

func newReceiptRequest(t *testing.T, orderID string, userID uint64) *http.Request {
	t.Helper()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	part, err := writer.CreateFormFile("receipt", "receipt.png")
	if err != nil {
		t.Fatalf("create form file: %v", err)
	}
	if _, err := part.Write([]byte("png bytes")); err != nil {
		t.Fatalf("write form file: %v", err)
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("close multipart writer: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, "/api/v1/orders/"+orderID+"/receipt", body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	req = mux.SetURLVars(req, map[string]string{"id": orderID})

	ctx := context.WithValue(req.Context(), constant.UserIDKey, userID)
	return req.WithContext(ctx)
}

func countFiles(t *testing.T, dir string) int {
	t.Helper()
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("read receipt dir: %v", err)
	}
	return len(entries)
}

func TestRestHandler_UploadReceipt(t *testing.T) {
	t.Run("success keeps the stored file", func(t *testing.T) {
		dir := t.TempDir()
		orderApp := ordermocks.NewOrderApp(t)
		orderApp.On("UploadReceipt", mock.Anything, uint64(7), "VH-1001", mock.AnythingOfType("string")).
			Return(nil).Once()

		rh := &transport.RestHandler{
			Config:   &config.Config{Order: config.OrderConfig{ReceiptDir: dir}},
			OrderApp: orderApp,
		}

		rec := httptest.NewRecorder()
		rh.UploadReceipt(rec, newReceiptRequest(t, "VH-1001", 7))

		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
		}
		if n := countFiles(t, dir); n != 1 {
			t.Fatalf("stored files = %d, want 1", n)
		}
	})

	t.Run("rejected upload leaves no file behind", func(t *testing.T) {
		dir := t.TempDir()
		orderApp := ordermocks.NewOrderApp(t)
		orderApp.On("UploadReceipt", mock.Anything, uint64(7), "VH-1001", mock.AnythingOfType("string")).
			Return(cerr.SetCustomError(constant.ErrInvalidRequest)).Once()

		rh := &transport.RestHandler{
			Config:   &config.Config{Order: config.OrderConfig{ReceiptDir: dir}},
			OrderApp: orderApp,
		}

		rec := httptest.NewRecorder()
		rh.UploadReceipt(rec, newReceiptRequest(t, "VH-1001", 7))

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("status = %d, want %d", rec.Code, http.StatusBadRequest)
		}
		if n := countFiles(t, dir); n != 0 {
			t.Fatalf("stored files = %d, want 0", n)
		}
	})

	t.Run("unsupported extension is rejected before any write", func(t *testing.T) {
		dir := t.TempDir()
		orderApp := ordermocks.NewOrderApp(t)

		rh := &transport.RestHandler{
			Config:   &config.Config{Order: config.OrderConfig{ReceiptDir: dir}},
			OrderApp: orderApp,
		}

		body := &bytes.Buffer{}
		writer := multipart.NewWriter(body)
		part, err := writer.CreateFormFile("receipt", "receipt.exe")
		if err != nil {
			t.Fatalf("create form file: %v", err)
		}
		if _, err := part.Write([]byte("not an image")); err != nil {
			t.Fatalf("write form file: %v", err)
		}
		if err := writer.Close(); err != nil {
			t.Fatalf("close multipart writer: %v", err)
		}

		req := httptest.NewRequest(http.MethodPost, "/api/v1/orders/VH-1001/receipt", body)
		req.Header.Set("Content-Type", writer.FormDataContentType())
		req = mux.SetURLVars(req, map[string]string{"id": "VH-1001"})
		req = req.WithContext(context.WithValue(req.Context(), constant.UserIDKey, uint64(7)))

		rec := httptest.NewRecorder()
		rh.UploadReceipt(rec, req)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("status = %d, want %d", rec.Code, http.StatusBadRequest)
		}
		if n := countFiles(t, dir); n != 0 {
			t.Fatalf("stored files = %d, want 0", n)
		}
	})
}
