package redisrepo

import "fmt"

const (
	STORAGE_KEY = "blog:%s" // <key>
)

func StorageKey(key string) string {
	return fmt.Sprintf(STORAGE_KEY, key)
}
