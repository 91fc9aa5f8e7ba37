package handler

import (
	"encoding/xml"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"kioku/src/app/http/response"
	"kioku/src/app/middleware"
	"kioku/src/core/domain"
	"kioku/src/core/ports"
	"kioku/src/core/usecase"
)

// rssFeed is the RSS 2.0 envelope.
type rssFeed struct {
	XMLName xml.Name   `xml:"rss"`
	Version string     `xml:"version,attr"`
	Channel rssChannel `xml:"channel"`
}

type rssChannel struct {
	Title       string    `xml:"title"`
	Link        string    `xml:"link"`
	Description string    `xml:"description"`
	Items       []rssItem `xml:"item"`
}

type rssItem struct {
	Title       string `xml:"title"`
	Link        string `xml:"link"`
	Description string `xml:"description,omitempty"`
	PubDate     string `xml:"pubDate"`
	GUID        string `xml:"guid"`
}

// RSSHandler serves the public document feed as RSS 2.0.
type RSSHandler struct {
	docService  *usecase.DocService
	siteBaseURL string
}

func NewRSSHandler(docService *usecase.DocService, siteBaseURL string) *RSSHandler {
	return &RSSHandler{
		docService:  docService,
		siteBaseURL: strings.TrimRight(siteBaseURL, "/"),
	}
}

// Docs handles GET /v1/docs/rss. Only public documents are listed, newest
// first; item links use the short slug routes.
func (h *RSSHandler) Docs(c *gin.Context) {
	requestID := middleware.GetRequestID(c)

	res, err := h.docService.Search(c.Request.Context(), ports.SearchDocQuery{
		Statuses: []domain.DocStatus{domain.DocStatusPublic},
	})
	if err != nil {
		c.Error(err)
		response.FromDomainError(c, err, requestID)
		return
	}

	items := make([]rssItem, 0, len(res.Docs))
	for _, doc := range res.Docs {
		link := h.siteBaseURL + "/docs/" + doc.Slug
		items = append(items, rssItem{
			Title:       doc.Title,
			Link:        link,
			Description: doc.Description,
			PubDate:     doc.CreatedAt.Format(time.RFC1123Z),
			GUID:        link,
		})
	}

	feed := rssFeed{
		Version: "2.0",
		Channel: rssChannel{
			Title:       "Docs",
			Link:        h.siteBaseURL + "/docs",
			Description: "Document list",
			Items:       items,
		},
	}

	body, err := xml.Marshal(feed)
	if err != nil {
		c.Error(err)
		response.InternalError(c, requestID)
		return
	}

	c.Data(http.StatusOK, "application/rss+xml; charset=utf-8", append([]byte(xml.Header), body...))
}
