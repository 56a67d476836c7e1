package storage

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"
)

// ScheduleCache decorates a Store with a Redis read-through cache for
// doctor office hours. Schedules change rarely and are read on every
// availability query, so they are the only thing worth caching. Cache
// failures never fail the request, the inner store is always the truth.
type ScheduleCache struct {
	Store

	rdb    *goredis.Client
	ttl    time.Duration
	logger *slog.Logger
}

func NewScheduleCache(inner Store, rdb *goredis.Client, ttl time.Duration, logger *slog.Logger) *ScheduleCache {
	return &ScheduleCache{
		Store:  inner,
		rdb:    rdb,
		ttl:    ttl,
		logger: logger,
	}
}

func scheduleCacheKey(doctorID uuid.UUID) string {
	return "citamed:schedule:" + doctorID.String()
}

func (c *ScheduleCache) GetDoctorSchedule(ctx context.Context, doctorID uuid.UUID) (DoctorSchedule, error) {
	key := scheduleCacheKey(doctorID)

	raw, err := c.rdb.Get(ctx, key).Bytes()
	if err == nil {
		var sched DoctorSchedule
		if jErr := json.Unmarshal(raw, &sched); jErr == nil {
			return sched, nil
		}
		// Corrupt entry, drop it and fall through.
		c.rdb.Del(ctx, key)
	} else if err != goredis.Nil {
		c.logger.Warn("schedule cache read failed", "doctor_id", doctorID, "error", err)
	}

	sched, err := c.Store.GetDoctorSchedule(ctx, doctorID)
	if err != nil {
		return DoctorSchedule{}, err
	}

	if raw, jErr := json.Marshal(sched); jErr == nil {
		if sErr := c.rdb.Set(ctx, key, raw, c.ttl).Err(); sErr != nil {
			c.logger.Warn("schedule cache write failed", "doctor_id", doctorID, "error", sErr)
		}
	}
	return sched, nil
}

func (c *ScheduleCache) SetDoctorSchedule(ctx context.Context, sched DoctorSchedule) error {
	if err := c.Store.SetDoctorSchedule(ctx, sched); err != nil {
		return err
	}
	if err := c.rdb.Del(ctx, scheduleCacheKey(sched.DoctorID)).Err(); err != nil {
		c.logger.Warn("schedule cache invalidation failed", "doctor_id", sched.DoctorID, "error", err)
	}
	return nil
}
