package live_updates

import "time"

const (
	// writeWait время на запись одного сообщения
	writeWait = 10 * time.Second

	// pongWait клиент должен ответить на ping за это время
	pongWait = 60 * time.Second

	// pingPeriod должен быть меньше pongWait
	pingPeriod = pongWait * 9 / 10

	// maxMessageSize от клиента ждем только управляющие кадры
	maxMessageSize = 512
)
