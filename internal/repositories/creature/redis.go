package creature

import (
	"context"
	"encoding/json"

	redis "github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/rpg-statblock/internal/entities/creature"
	"github.com/KirkDiggler/rpg-statblock/internal/errors"
	redisclient "github.com/KirkDiggler/rpg-statblock/internal/redis"
)

const (
	creatureKeyPrefix = "creature:"
	// indexKey is a sorted set of record IDs scored by creation time in milliseconds
	indexKey = "creature:index"
)

type redisRepository struct {
	client redisclient.Client
}

// NewRedisRepository creates a new Redis-backed creature repository
func NewRedisRepository(client redisclient.Client) Repository {
	return &redisRepository{
		client: client,
	}
}

func recordKey(id string) string {
	return creatureKeyPrefix + id
}

func (r *redisRepository) Create(ctx context.Context, input CreateInput) (*CreateOutput, error) {
	if err := validateRecord(input.Record); err != nil {
		return nil, err
	}

	key := recordKey(input.Record.ID)
	exists, err := r.client.Exists(ctx, key).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to check creature existence")
	}
	if exists > 0 {
		return nil, errors.AlreadyExistsf("creature with ID %s already exists", input.Record.ID)
	}

	data, err := json.Marshal(input.Record)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal creature")
	}

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, key, data, 0)
	pipe.ZAdd(ctx, indexKey, redis.Z{
		Score:  float64(input.Record.CreatedAt.UnixMilli()),
		Member: input.Record.ID,
	})
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to create creature")
	}

	return &CreateOutput{Record: input.Record}, nil
}

func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errRecordIDEmpty)
	}

	result, err := r.client.Get(ctx, recordKey(input.ID)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("creature with ID %s not found", input.ID)
		}
		return nil, errors.Wrapf(err, "failed to get creature")
	}

	record, err := unmarshalRecord(result)
	if err != nil {
		return nil, err
	}
	return &GetOutput{Record: record}, nil
}

func (r *redisRepository) List(ctx context.Context, input ListInput) (*ListOutput, error) {
	total, err := r.client.ZCard(ctx, indexKey).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to count creatures")
	}

	start := int64(max(input.Offset, 0))
	stop := int64(-1)
	if input.Limit > 0 {
		stop = start + int64(input.Limit) - 1
	}
	ids, err := r.client.ZRevRange(ctx, indexKey, start, stop).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list creature IDs")
	}
	if len(ids) == 0 {
		return &ListOutput{Total: int(total)}, nil
	}

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = recordKey(id)
	}
	values, err := r.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get creatures")
	}

	records := make([]*creature.Record, 0, len(values))
	for _, v := range values {
		s, ok := v.(string)
		if !ok {
			// indexed ID whose payload is gone
			continue
		}
		record, err := unmarshalRecord(s)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}

	return &ListOutput{Records: records, Total: int(total)}, nil
}

func (r *redisRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errRecordIDEmpty)
	}

	pipe := r.client.TxPipeline()
	del := pipe.Del(ctx, recordKey(input.ID))
	pipe.ZRem(ctx, indexKey, input.ID)
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to delete creature")
	}
	if del.Val() == 0 {
		return nil, errors.NotFoundf("creature with ID %s not found", input.ID)
	}

	return &DeleteOutput{}, nil
}

func unmarshalRecord(data string) (*creature.Record, error) {
	var record creature.Record
	if err := json.Unmarshal([]byte(data), &record); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal creature")
	}
	if record.ID == "" || record.Creature == nil {
		return nil, errors.Internal("stored creature payload is empty")
	}
	return &record, nil
}
