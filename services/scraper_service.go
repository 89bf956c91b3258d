package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/chromedp/cdproto/emulation"
	"github.com/chromedp/chromedp"
)

// ScrapedAd is one listing extracted from an external classifieds page.
type ScrapedAd struct {
	Title       string `json:"title"`
	Link        string `json:"link"`
	Price       string `json:"price"`
	Description string `json:"description"`
	Image       string `json:"image"`
}

const scraperUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0 Safari/537.36"

// The selectors match divar.ir's card markup and will break when the site
// changes its structure.
const extractListingsScript = `JSON.stringify(Array.from(
	document.querySelectorAll('div.post-list__widget-col-c1444')
).map(function (el) {
	var meta = Array.from(el.querySelectorAll('div.kt-post-card__description > div.kt-post-card__meta-item'))
		.map(function (m) { return m.textContent.trim(); });
	var price = '';
	meta.forEach(function (text) {
		if (text.indexOf('تومان') !== -1 || text.indexOf('مقطوع') !== -1) { price = text; }
	});
	var titleEl = el.querySelector('h2.kt-post-card__title');
	var linkEl = el.querySelector('a');
	var imgEl = el.querySelector('img');
	return {
		title: titleEl ? titleEl.textContent.trim() : '',
		link: linkEl ? linkEl.href : '',
		price: price,
		description: meta.length > 0 ? meta[0] : '',
		image: imgEl ? (imgEl.src || '') : ''
	};
}).filter(function (ad) { return ad.title !== '' && ad.link !== ''; }))`

// ScrapeListings loads an external listings page in a headless browser and
// extracts the ads it finds. The page is rendered client-side, so a plain
// HTTP fetch would return an empty shell.
func ScrapeListings(parent context.Context, pageURL string) ([]ScrapedAd, error) {
	ctx, cancel := chromedp.NewContext(parent)
	defer cancel()
	ctx, cancel = context.WithTimeout(ctx, 45*time.Second)
	defer cancel()

	var raw string
	err := chromedp.Run(ctx,
		chromedp.ActionFunc(func(ctx context.Context) error {
			return emulation.SetUserAgentOverride(scraperUserAgent).Do(ctx)
		}),
		chromedp.Navigate(pageURL),
		chromedp.WaitReady("body"),
		chromedp.Evaluate(extractListingsScript, &raw),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load listings page: %w", err)
	}

	var ads []ScrapedAd
	if err := json.Unmarshal([]byte(raw), &ads); err != nil {
		return nil, fmt.Errorf("failed to parse scraped listings: %w", err)
	}

	if len(ads) == 0 {
		return nil, fmt.Errorf("no listings found on page, the site structure may have changed")
	}

	return ads, nil
}
