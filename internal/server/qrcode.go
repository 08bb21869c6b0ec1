package server

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/skip2/go-qrcode"
)

// getTableQRCode serves the PNG customers scan to open the menu with their
// table preselected.
func (h *Handler) getTableQRCode(w http.ResponseWriter, r *http.Request) {
	number, err := strconv.Atoi(mux.Vars(r)["number"])
	if err != nil || number <= 0 || number > h.Config.TableCount {
		respondError(w, http.StatusBadRequest, "invalid table number")
		return
	}

	qrData := fmt.Sprintf("%s/menu?table=%d", h.Config.BaseURL, number)
	png, err := qrcode.Encode(qrData, qrcode.Medium, 256)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to generate QR code")
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Write(png)
}
