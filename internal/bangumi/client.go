// =============================================================================
// client.go - bangumi.org 番組表の取得
// =============================================================================
//
// テレビ番組表Gガイド（bangumi.org）から、指定した放送日・エリアの
// 番組表ページ（HTML）を取得します。
//
//	GET <base>/epg/td?broad_cast_date=YYYYMMDD&ggm_group_id=<エリアID>
//
// 【ポイント】
//   - 呼び出し側は「放送日」（05:00 区切り）を渡す。カレンダー上の日付ではない
//   - リトライはしない。失敗はそのままエラーとして返す
//   - HTTPクライアントは外から注入する（テストでは httptest のサーバに向ける）
//
// =============================================================================
package bangumi

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"
)

const (
	// DefaultBaseURL は番組表サイトのURL
	DefaultBaseURL = "https://bangumi.org"

	// DefaultUserAgent はリクエスト時の User-Agent
	DefaultUserAgent = "Mozilla/5.0 (compatible; tvshow/0.1; +https://bangumi.org)"

	// DefaultTimeout はリクエストのタイムアウト
	DefaultTimeout = 10 * time.Second

	epgPath = "/epg/td"

	// DefaultMaxBodySize は読み込むレスポンスの上限（番組表ページは数MB程度）
	DefaultMaxBodySize = 32 << 20
)

// ErrUnexpectedStatus は 2xx 以外のレスポンス
var ErrUnexpectedStatus = errors.New("unexpected status")

// ErrBodyTooLarge はレスポンスが上限サイズを超えた
var ErrBodyTooLarge = errors.New("response body too large")

// Client は番組表ページを取得するクライアント
type Client struct {
	httpClient *http.Client // HTTPクライアント
	baseURL    string       // 例: https://bangumi.org
	userAgent  string
	maxBody    int64        // これを超えるページはエラー
	logger     *zap.Logger
}

// Option は Client の設定を変える
type Option func(*Client)

// WithBaseURL は取得先のURLを差し替える
func WithBaseURL(base string) Option {
	return func(c *Client) {
		if base != "" {
			c.baseURL = base
		}
	}
}

// WithUserAgent は User-Agent を差し替える
func WithUserAgent(ua string) Option {
	return func(c *Client) {
		if ua != "" {
			c.userAgent = ua
		}
	}
}

// WithMaxBodySize は読み込むレスポンスの上限を変える
func WithMaxBodySize(n int64) Option {
	return func(c *Client) {
		if n > 0 {
			c.maxBody = n
		}
	}
}

// WithLogger はログ出力先を設定する
func WithLogger(l *zap.Logger) Option {
	return func(c *Client) {
		if l != nil {
			c.logger = l
		}
	}
}

// NewClient は Client を作る。httpClient が nil なら DefaultTimeout 付きのものを使う
func NewClient(httpClient *http.Client, opts ...Option) *Client {
	c := &Client{
		httpClient: httpClient,
		baseURL:    DefaultBaseURL,
		userAgent:  DefaultUserAgent,
		maxBody:    DefaultMaxBodySize,
		logger:     zap.NewNop(),
	}
	if c.httpClient == nil {
		c.httpClient = &http.Client{Timeout: DefaultTimeout}
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// URL は放送日 date（YYYYMMDD）とエリアIDから番組表ページのURLを作る
func (c *Client) URL(date, areaID string) string {
	params := url.Values{}
	params.Set("broad_cast_date", date)
	params.Set("ggm_group_id", areaID)
	return c.baseURL + epgPath + "?" + params.Encode()
}

// FetchDay は1日分の番組表ページを取得し、HTMLを文字列で返す
func (c *Client) FetchDay(ctx context.Context, date, areaID string) (string, error) {
	u := c.URL(date, areaID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return "", errors.Wrap(err, "request creation failed")
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml")
	req.Header.Set("Accept-Language", "ja,en-US;q=0.8")

	c.logger.Debug("Fetching TV schedule.", zap.String("url", u))
	start := time.Now()

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", errors.Wrapf(err, "request failed: %s", u)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", errors.Wrapf(ErrUnexpectedStatus, "%s: HTTP %d", u, resp.StatusCode)
	}

	// 上限 +1 バイトまで読み、超えていれば途中までの HTML を解析させない
	body, err := io.ReadAll(io.LimitReader(resp.Body, c.maxBody+1))
	if err != nil {
		return "", errors.Wrapf(err, "read body failed: %s", u)
	}
	if int64(len(body)) > c.maxBody {
		return "", errors.Wrapf(ErrBodyTooLarge, "%s: more than %d bytes", u, c.maxBody)
	}

	c.logger.Debug("Fetched TV schedule.",
		zap.String("url", u),
		zap.Int("bytes", len(body)),
		zap.Duration("elapsed", time.Since(start)))

	return string(body), nil
}
