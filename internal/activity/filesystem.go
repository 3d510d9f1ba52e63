package activity

import (
	"encoding/json"
	"fmt"
	"time"

	"casaflow/internal/models"

	"github.com/blevesearch/bleve/v2"
	"github.com/blevesearch/bleve/v2/mapping"
	"github.com/blevesearch/bleve/v2/search/query"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// FilesystemEntry is the document shape indexed in bleve.
type FilesystemEntry struct {
	Message    string    `json:"message"`
	Timestamp  time.Time `json:"timestamp"`
	Action     string    `json:"action"`
	ObjectType string    `json:"object_type"`
	UserID     string    `json:"user_id"`
	PropertyID string    `json:"property_id"`
	TenantID   string    `json:"tenant_id"`
	LeaseID    string    `json:"lease_id"`
	RequestID  string    `json:"request_id"`
	Object     string    `json:"object"`
}

// FilesystemClient implements IActivityLogger over a local bleve index.
type FilesystemClient struct {
	index bleve.Index
}

func NewFilesystemClient(config models.ActivityConfiguration) IActivityLogger {
	dir := config.Filesystem.Directory

	index, err := bleve.Open(dir)
	if err != nil {
		index, err = bleve.New(dir, buildIndexMapping())
		if err != nil {
			zap.L().Fatal("Failed to create activity index", zap.Error(err))
		}
	}

	return &FilesystemClient{index: index}
}

func buildIndexMapping() *mapping.IndexMappingImpl {
	keywordMapping := bleve.NewKeywordFieldMapping()
	dateMapping := bleve.NewDateTimeFieldMapping()
	textMapping := bleve.NewTextFieldMapping()

	storedOnlyMapping := bleve.NewTextFieldMapping()
	storedOnlyMapping.Index = false
	storedOnlyMapping.Store = true

	docMapping := bleve.NewDocumentMapping()
	docMapping.AddFieldMappingsAt("action", keywordMapping)
	docMapping.AddFieldMappingsAt("object_type", keywordMapping)
	docMapping.AddFieldMappingsAt("user_id", keywordMapping)
	docMapping.AddFieldMappingsAt("property_id", keywordMapping)
	docMapping.AddFieldMappingsAt("tenant_id", keywordMapping)
	docMapping.AddFieldMappingsAt("lease_id", keywordMapping)
	docMapping.AddFieldMappingsAt("request_id", keywordMapping)
	docMapping.AddFieldMappingsAt("timestamp", dateMapping)
	docMapping.AddFieldMappingsAt("message", textMapping)
	docMapping.AddFieldMappingsAt("object", storedOnlyMapping)

	indexMapping := bleve.NewIndexMapping()
	indexMapping.DefaultMapping = docMapping

	return indexMapping
}

func (c *FilesystemClient) Close() error {
	return c.index.Close()
}

func (c *FilesystemClient) Send(activity models.Activity) error {
	var objectJSON string
	if activity.Object != nil {
		b, err := json.Marshal(activity.Object)
		if err != nil {
			return fmt.Errorf("failed to marshal object: %w", err)
		}
		objectJSON = string(b)
	}

	entry := FilesystemEntry{
		Message:    activity.Message,
		Timestamp:  time.Now().UTC(),
		Action:     activity.Filter["action"],
		ObjectType: activity.Filter["object_type"],
		UserID:     activity.Filter["user_id"],
		PropertyID: activity.Filter["property_id"],
		TenantID:   activity.Filter["tenant_id"],
		LeaseID:    activity.Filter["lease_id"],
		RequestID:  activity.Filter["request_id"],
		Object:     objectJSON,
	}

	docID := uuid.New().String()
	if err := c.index.Index(docID, entry); err != nil {
		return fmt.Errorf("failed to index activity: %w", err)
	}

	return nil
}

func buildBleveQuery(searchCriteria map[string][]string) query.Query {
	if len(searchCriteria) == 0 {
		return bleve.NewMatchAllQuery()
	}

	conjunction := bleve.NewConjunctionQuery()
	for field, values := range searchCriteria {
		if len(values) == 0 {
			continue
		}
		disjunction := bleve.NewDisjunctionQuery()
		for _, value := range values {
			termQuery := bleve.NewTermQuery(value)
			termQuery.SetField(field)
			disjunction.AddQuery(termQuery)
		}
		conjunction.AddQuery(disjunction)
	}
	return conjunction
}

func (c *FilesystemClient) Search(searchCriteria map[string][]string) ([]map[string]any, error) {
	criteriaQuery := buildBleveQuery(searchCriteria)

	now := time.Now()
	thirtyDaysAgo := now.AddDate(0, 0, -30)
	dateQuery := bleve.NewDateRangeQuery(thirtyDaysAgo, now)
	dateQuery.SetField("timestamp")

	conjunction := bleve.NewConjunctionQuery(criteriaQuery, dateQuery)

	searchRequest := bleve.NewSearchRequest(conjunction)
	searchRequest.Size = 100
	searchRequest.SortBy([]string{"-timestamp"})
	searchRequest.Fields = []string{"*"}

	result, err := c.index.Search(searchRequest)
	if err != nil {
		return nil, fmt.Errorf("failed to search activity: %w", err)
	}

	activities := make([]map[string]any, 0, len(result.Hits))
	for _, hit := range result.Hits {
		entry := map[string]any{}
		for _, field := range []string{
			"message", "timestamp", "action", "object_type",
			"user_id", "property_id", "tenant_id", "lease_id", "request_id",
		} {
			if value, ok := hit.Fields[field].(string); ok && value != "" {
				entry[field] = value
			}
		}
		if objectJSON, ok := hit.Fields["object"].(string); ok && objectJSON != "" {
			var object map[string]any
			if err := json.Unmarshal([]byte(objectJSON), &object); err == nil {
				entry["object"] = object
			}
		}
		activities = append(activities, entry)
	}

	return activities, nil
}

func (c *FilesystemClient) CountByDay(searchCriteria map[string][]string, days int) ([]models.TimeSeriesPoint, error) {
	criteriaQuery := buildBleveQuery(searchCriteria)

	now := time.Now()
	windowStart := now.AddDate(0, 0, -days)
	dateQuery := bleve.NewDateRangeQuery(windowStart, now)
	dateQuery.SetField("timestamp")

	conjunction := bleve.NewConjunctionQuery(criteriaQuery, dateQuery)

	searchRequest := bleve.NewSearchRequest(conjunction)
	searchRequest.Size = 10000
	searchRequest.Fields = []string{"timestamp"}

	result, err := c.index.Search(searchRequest)
	if err != nil {
		return nil, fmt.Errorf("failed to count activity: %w", err)
	}

	counts := make(map[string]int64)
	for _, hit := range result.Hits {
		raw, ok := hit.Fields["timestamp"].(string)
		if !ok {
			continue
		}
		ts, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			continue
		}
		counts[ts.Format("2006-01-02")]++
	}

	points := make([]models.TimeSeriesPoint, 0, days)
	for i := days - 1; i >= 0; i-- {
		date := now.AddDate(0, 0, -i).Format("2006-01-02")
		points = append(points, models.TimeSeriesPoint{Date: date, Count: counts[date]})
	}

	return points, nil
}
