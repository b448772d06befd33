package http

import (
	"encoding/xml"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/ikigaiwif606-acc/pickleball-dashboard/internal/domain"
)

type sitemapURL struct {
	Loc        string `xml:"loc"`
	LastMod    string `xml:"lastmod"`
	ChangeFreq string `xml:"changefreq"`
	Priority   string `xml:"priority"`
}

type sitemapURLSet struct {
	XMLName xml.Name     `xml:"urlset"`
	XMLNS   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

// RegisterSitemap serves /sitemap.xml generated from the catalog: the index
// page plus one entry per court detail page.
func RegisterSitemap(e *echo.Echo, baseURL string, courts []domain.Court) {
	e.GET("/sitemap.xml", func(c echo.Context) error {
		today := time.Now().UTC().Format("2006-01-02")

		urls := make([]sitemapURL, 0, len(courts)+1)
		urls = append(urls, sitemapURL{
			Loc:        baseURL,
			LastMod:    today,
			ChangeFreq: "daily",
			Priority:   "1.0",
		})
		for _, court := range courts {
			urls = append(urls, sitemapURL{
				Loc:        baseURL + "/courts/" + court.ID,
				LastMod:    today,
				ChangeFreq: "weekly",
				Priority:   "0.8",
			})
		}

		set := sitemapURLSet{
			XMLNS: "http://www.sitemaps.org/schemas/sitemap/0.9",
			URLs:  urls,
		}
		out, err := xml.MarshalIndent(set, "", "  ")
		if err != nil {
			return err
		}
		return c.Blob(http.StatusOK, "application/xml", append([]byte(xml.Header), out...))
	})
}
