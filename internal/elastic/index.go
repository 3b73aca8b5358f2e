// internal/elastic/index.go
package elastic

import (
	"bytes"
	"context"
	"fmt"

	es "github.com/elastic/go-elasticsearch/v8"
)

const (
	IdxEvents = "events_v1"
	IdxUsers  = "users_v1"
)

func EnsureIndexes(ctx context.Context, c *es.Client) error {
	mapping := `{"settings":{"number_of_shards":1},"mappings":{"dynamic":"strict","properties":{
		"title":{"type":"text"},"description":{"type":"text"},"location":{"type":"keyword"},
		"date":{"type":"date"},"ticket_price":{"type":"float"},"created_by":{"type":"keyword"},"updated_at":{"type":"date"}
	}}}`
	if err := ensure(ctx, c, IdxEvents, mapping); err != nil {
		return err
	}

	mapping = `{"settings":{"number_of_shards":1},"mappings":{"dynamic":"strict","properties":{
		"name":{"type":"text"},"email":{"type":"keyword"},"role":{"type":"keyword"},
		"college":{"type":"text"},"updated_at":{"type":"date"}
	}}}`
	return ensure(ctx, c, IdxUsers, mapping)
}

func ensure(ctx context.Context, c *es.Client, index, body string) error {
	exists, _ := c.Indices.Exists([]string{index})
	if exists.StatusCode == 200 {
		return nil
	}
	_, err := c.Indices.Create(index, c.Indices.Create.WithBody(bytes.NewBufferString(body)), c.Indices.Create.WithContext(ctx))
	if err != nil {
		return fmt.Errorf("create index %s: %w", index, err)
	}
	return nil
}
