package mealscan

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"net/http"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/2beens/wellness/internal/telemetry/tracing"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
	"golang.org/x/time/rate"
	"google.golang.org/genai"
)

const Prompt = `Analyze this food photo. List each food item you can see, estimate the portion size and nutritional content. Return JSON: {"items": [{"name", "estimated_grams", "calories", "protein_g", "carbs_g", "fat_g", "confidence": "high|medium|low"}]}`

const DefaultModel = "gemini-1.5-flash"

var ErrEmptyImage = errors.New("empty image")

// DetectedItem keeps the field names the model is asked to reply with.
type DetectedItem struct {
	Name           string  `json:"name"`
	EstimatedGrams float64 `json:"estimated_grams"`
	Calories       float64 `json:"calories"`
	ProteinG       float64 `json:"protein_g"`
	CarbsG         float64 `json:"carbs_g"`
	FatG           float64 `json:"fat_g"`
	Confidence     string  `json:"confidence"`
}

// UnmarshalJSON accepts the numeric fields as JSON numbers or as numeric
// strings, the model quotes them every now and then.
func (d *DetectedItem) UnmarshalJSON(b []byte) error {
	var raw struct {
		Name           string    `json:"name"`
		EstimatedGrams flexFloat `json:"estimated_grams"`
		Calories       flexFloat `json:"calories"`
		ProteinG       flexFloat `json:"protein_g"`
		CarbsG         flexFloat `json:"carbs_g"`
		FatG           flexFloat `json:"fat_g"`
		Confidence     string    `json:"confidence"`
	}
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	*d = DetectedItem{
		Name:           raw.Name,
		EstimatedGrams: float64(raw.EstimatedGrams),
		Calories:       float64(raw.Calories),
		ProteinG:       float64(raw.ProteinG),
		CarbsG:         float64(raw.CarbsG),
		FatG:           float64(raw.FatG),
		Confidence:     raw.Confidence,
	}
	return nil
}

type flexFloat float64

func (f *flexFloat) UnmarshalJSON(b []byte) error {
	var num json.Number
	if err := json.Unmarshal(b, &num); err != nil {
		var s *string
		if err := json.Unmarshal(b, &s); err != nil {
			return fmt.Errorf("number or numeric string expected, got %s", b)
		}
		if s == nil {
			*f = 0
			return nil
		}
		num = json.Number(strings.TrimSpace(*s))
	}
	if num == "" {
		*f = 0
		return nil
	}
	v, err := strconv.ParseFloat(string(num), 64)
	if err != nil {
		return fmt.Errorf("parse number %q: %w", num, err)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return fmt.Errorf("parse number %q: not finite", num)
	}
	*f = flexFloat(v)
	return nil
}

type Result struct {
	Items []DetectedItem `json:"items"`
}

type Analyzer interface {
	Analyze(ctx context.Context, image []byte, mimeType string) (*Result, error)
}

// NewAnalyzer returns a Gemini backed analyzer, or the fixed development one when apiKey is empty.
func NewAnalyzer(ctx context.Context, apiKey, model string, perMinute int, httpClient *http.Client) (Analyzer, error) {
	if apiKey == "" {
		log.Warnln("meal analysis: no gemini api key, using development analyzer")
		return DevAnalyzer{}, nil
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:     apiKey,
		Backend:    genai.BackendGeminiAPI,
		HTTPClient: httpClient,
	})
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}

	return NewGeminiAnalyzer(client.Models, model, perMinute), nil
}

// DevAnalyzer always detects the same plate of rice, dal and roti.
type DevAnalyzer struct{}

func (DevAnalyzer) Analyze(_ context.Context, image []byte, _ string) (*Result, error) {
	if len(image) == 0 {
		return nil, ErrEmptyImage
	}
	return &Result{
		Items: []DetectedItem{
			{Name: "Rice", EstimatedGrams: 150, Calories: 195, ProteinG: 4, CarbsG: 42, FatG: 0.5, Confidence: "high"},
			{Name: "Dal (Lentils)", EstimatedGrams: 100, Calories: 116, ProteinG: 9, CarbsG: 20, FatG: 0.4, Confidence: "medium"},
			{Name: "Roti", EstimatedGrams: 60, Calories: 158, ProteinG: 5, CarbsG: 31, FatG: 0.9, Confidence: "high"},
		},
	}, nil
}

type contentGenerator interface {
	GenerateContent(
		ctx context.Context,
		model string,
		contents []*genai.Content,
		config *genai.GenerateContentConfig,
	) (*genai.GenerateContentResponse, error)
}

type GeminiAnalyzer struct {
	generator contentGenerator
	model     string
	limiter   *rate.Limiter
}

func NewGeminiAnalyzer(generator contentGenerator, model string, perMinute int) *GeminiAnalyzer {
	if model == "" {
		model = DefaultModel
	}
	if perMinute <= 0 {
		perMinute = 10
	}
	return &GeminiAnalyzer{
		generator: generator,
		model:     model,
		limiter:   rate.NewLimiter(rate.Every(time.Minute/time.Duration(perMinute)), perMinute),
	}
}

func (ga *GeminiAnalyzer) Analyze(ctx context.Context, image []byte, mimeType string) (_ *Result, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "mealscan.gemini.analyze")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(
		attribute.String("gemini.model", ga.model),
		attribute.Int("image.size", len(image)),
	)

	if len(image) == 0 {
		return nil, ErrEmptyImage
	}
	if mimeType == "" {
		mimeType = http.DetectContentType(image)
	}

	if err := ga.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("wait for gemini rate limiter: %w", err)
	}

	contents := []*genai.Content{
		genai.NewContentFromParts([]*genai.Part{
			genai.NewPartFromText(Prompt),
			genai.NewPartFromBytes(image, mimeType),
		}, genai.RoleUser),
	}

	resp, err := ga.generator.GenerateContent(ctx, ga.model, contents, nil)
	if err != nil {
		return nil, fmt.Errorf("gemini generate content: %w", err)
	}

	return ParseItems(resp.Text())
}

var jsonBlockRegex = regexp.MustCompile(`\{[\s\S]*\}`)

// ParseItems extracts the outermost JSON object from a model reply.
// A reply without any object yields no items.
func ParseItems(text string) (*Result, error) {
	block := jsonBlockRegex.FindString(text)
	if block == "" {
		return &Result{Items: []DetectedItem{}}, nil
	}

	var result Result
	if err := json.Unmarshal([]byte(block), &result); err != nil {
		return nil, fmt.Errorf("parse gemini reply: %w", err)
	}
	if result.Items == nil {
		result.Items = []DetectedItem{}
	}
	return &result, nil
}
