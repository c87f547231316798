package fetch

import (
	"context"
	"fmt"
	"time"

	"boascrape/lib/restyutil"

	cloudflarebp "github.com/DaRealFreak/cloudflare-bp-go"
	"github.com/go-resty/resty/v2"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"golang.org/x/net/html/charset"
	"golang.org/x/text/transform"
)

var tracer = otel.Tracer("lib/fetch")

// Client fetches listing documents and decodes them to utf-8 text.
type Client struct {
	http *resty.Client
}

func NewClient() *Client {
	client := resty.New()
	client.GetClient().Transport = cloudflarebp.AddCloudFlareByPass(client.GetClient().Transport)

	client.SetHeader("user-agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/123.0.0.0 Safari/537.36")
	client.SetHeader("accept", "text/html,application/xhtml+xml")
	client.SetTimeout(time.Second * 60)

	return &Client{http: client}
}

func (c *Client) SetInstrumentOutput(output restyutil.InstrumentOutput) {
	restyutil.InstrumentClient(c.http, tracer, output)
}

// GetDocument fetches the page at link and decodes the body. The charset
// is detected from the content-type header and the body itself, falling
// back to utf-8; undecodable bytes are replaced rather than failing the
// run.
func (c *Client) GetDocument(ctx context.Context, link string) (string, error) {
	ctx, span := tracer.Start(ctx, "GetDocument")
	defer span.End()

	res, err := c.http.R().
		SetContext(ctx).
		Get(link)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return "", err
	}
	if res.IsError() {
		err := fmt.Errorf("fetch %s: %s", link, res.Status())
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return "", err
	}

	body := res.Body()
	enc, name, _ := charset.DetermineEncoding(body, res.Header().Get("Content-Type"))
	span.SetAttributes(attribute.String("charset", name))

	decoded, _, err := transform.Bytes(enc.NewDecoder(), body)
	if err != nil {
		// better a few replacement runes than no document at all
		return string(body), nil
	}
	return string(decoded), nil
}
