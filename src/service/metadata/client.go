package metadata

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/hashicorp/go-retryablehttp"
	"github.com/pkg/errors"

	"github.com/ProjectsTask/LandSwapCore/src/config"
)

// CreateReq 元数据创建请求
// 固定零版税, 不关联 collection/creator
type CreateReq struct {
	Mint string `json:"mint"` // 新铸造的地块标识
	Name string `json:"name"` // <= 32 字符
	URI  string `json:"uri"`  // <= 200 字符
}

// Service 描述性元数据服务 (外部协作方, 只约定接口)
// 铸造操作同步调用, 失败时整个铸造回滚
type Service interface {
	CreateParcelMetadata(ctx context.Context, req CreateReq) error
}

// Client 基于 HTTP 的元数据服务客户端
type Client struct {
	endpoint string
	http     *retryablehttp.Client
}

// NewClient 创建元数据服务客户端
// 网络抖动由 retryablehttp 兜底重试, 业务失败 (非 2xx) 不重试直接上抛
func NewClient(cfg config.MetadataCfg) *Client {
	client := retryablehttp.NewClient()
	client.RetryMax = cfg.Retries
	client.Logger = nil
	if cfg.Timeout > 0 {
		client.HTTPClient.Timeout = time.Duration(cfg.Timeout) * time.Second
	}

	return &Client{
		endpoint: cfg.Endpoint,
		http:     client,
	}
}

// CreateParcelMetadata 同步创建地块的描述性元数据
func (c *Client) CreateParcelMetadata(ctx context.Context, req CreateReq) error {
	body, err := json.Marshal(req)
	if err != nil {
		return errors.Wrap(err, "failed on marshal metadata request")
	}

	httpReq, err := retryablehttp.NewRequestWithContext(ctx, http.MethodPost,
		c.endpoint+"/metadata", bytes.NewReader(body))
	if err != nil {
		return errors.Wrap(err, "failed on build metadata request")
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return errors.Wrap(err, "failed on call metadata service")
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return fmt.Errorf("metadata service returned status %d", resp.StatusCode)
	}
	return nil
}
