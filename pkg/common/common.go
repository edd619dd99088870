package common

import (
	"crypto/sha256"
	"encoding/hex"
	"os"
	"time"

	"github.com/bwmarrin/snowflake"
)

var snowflakeNode *snowflake.Node

func init() {
	var err error
	snowflakeNode, err = snowflake.NewNode(1)
	if err != nil {
		panic(err)
	}
}

// UUIDint64 returns a time-ordered unique identifier.
func UUIDint64() int64 {
	return snowflakeNode.Generate().Int64()
}

// UUID returns a time-ordered unique identifier string.
func UUID() string {
	return snowflakeNode.Generate().String()
}

// GetSecretSalt reads the install-local salt, defaulting when unset.
func GetSecretSalt() string {
	if salt := os.Getenv("GRACEPOS_SECRET_SALT"); salt != "" {
		return salt
	}
	return "grace-pos-local-salt"
}

func Sha256HashWithSalt(src string, salt string) string {
	h := sha256.New()
	h.Write([]byte(src + salt))
	return hex.EncodeToString(h.Sum(nil))
}

// DateTimeLayout is the display format kept for parity with the first
// storage generation; never parse it to order records, use Timestamp.
const DateTimeLayout = "2006-01-02 15:04:05"

func FormatDateTime(t time.Time) string {
	return t.Format(DateTimeLayout)
}
