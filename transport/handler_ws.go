package transport

import (
	"fmt"
	"net/http"

	"github.com/gorilla/websocket"
	"github.com/vapehero/wholesale-backend/constant"
	utilsContext "github.com/vapehero/wholesale-backend/utils/context"
	"github.com/vapehero/wholesale-backend/utils/errors"
	"github.com/vapehero/wholesale-backend/utils/logger"
	"go.uber.org/zap"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// Notifications upgrades to a websocket and streams events for the caller's
// topics. Buyers get their own topic; admins additionally get the admin feed.
func (s *RestHandler) Notifications(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := utilsContext.GetUserID(ctx)
	if !ok {
		writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
		return
	}

	topics := []string{fmt.Sprintf(constant.TopicUserFormat, userID)}
	if utilsContext.IsAdmin(ctx) {
		topics = append(topics, constant.TopicAdmin)
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		logger.Error("[Notifications] upgrade", zap.Uint64("user_id", userID), zap.Error(err))
		return
	}

	// blocks until the client goes away
	s.Hub.Subscribe(conn, topics)
}
