package redis

import (
	"encoding/json"
	"fmt"
	"time"
)

// Resolved slot lists change on every booking, so entries are short-lived and
// every appointment or schedule write flushes them.
const slotCacheTTL = 60 * time.Second

func slotKey(date string, serviceID uint) string {
	return fmt.Sprintf("slots:%s:%d", date, serviceID)
}

// GetCachedSlots returns the cached slot list for a date and service, or
// false when the cache is cold or disabled.
func GetCachedSlots(date string, serviceID uint, out interface{}) bool {
	if Client == nil {
		return false
	}
	data, err := Client.Get(Ctx, slotKey(date, serviceID)).Bytes()
	if err != nil {
		return false
	}
	return json.Unmarshal(data, out) == nil
}

// SetCachedSlots stores a resolved slot list.
func SetCachedSlots(date string, serviceID uint, slots interface{}) {
	if Client == nil {
		return
	}
	data, err := json.Marshal(slots)
	if err != nil {
		return
	}
	Client.Set(Ctx, slotKey(date, serviceID), data, slotCacheTTL)
}

// InvalidateSlots drops every cached slot list. Called after appointment,
// weekly availability and exception writes.
func InvalidateSlots() {
	if Client == nil {
		return
	}
	iter := Client.Scan(Ctx, 0, "slots:*", 0).Iterator()
	for iter.Next(Ctx) {
		Client.Del(Ctx, iter.Val())
	}
}
