package hashutil

import (
	"crypto/sha1"
	"encoding/hex"
	"strconv"
	"time"

	"github.com/bloops-games/improv/internal/bytespool"
)

// SerializedSha1FromTime returns a hex sha1 of the current unix nano time.
func SerializedSha1FromTime() string {
	buf := bytespool.Get()
	defer bytespool.Put(buf)

	buf.WriteString(strconv.FormatInt(time.Now().UnixNano(), 10))
	hash := sha1.Sum(buf.Bytes())

	return hex.EncodeToString(hash[:])
}

// CallbackData builds inline button data that can not collide with user
// supplied values. Telegram limits callback data to 64 bytes.
func CallbackData(name string) string {
	data := name + ":" + SerializedSha1FromTime()
	if len(data) > 64 {
		return data[:64]
	}

	return data
}
