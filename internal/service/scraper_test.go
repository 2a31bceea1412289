package service

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
)

const samplePostPage = `
<html><body>
<div class="comments">
  <div class="comment-item" data-comment-id="c-101">
    <span class="comment-author">김철수</span>
    <p class="comment-text">쪽파김치1, 열무김치1</p>
  </div>
  <div class="comment-item">
    <span class="comment-author">이영희</span>
    <p class="comment-text">2번 3개요</p>
  </div>
  <div class="comment-item" data-comment-id="c-103">
    <span class="comment-author">박민수</span>
    <p class="comment-text">   </p>
  </div>
</div>
</body></html>`

func TestParseComments(t *testing.T) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(samplePostPage))
	if err != nil {
		t.Fatalf("parse sample page: %v", err)
	}

	comments := ParseComments(doc)
	if len(comments) != 2 {
		t.Fatalf("expected 2 comments (blank one dropped), got %+v", comments)
	}

	if comments[0].ID != "c-101" || comments[0].Author != "김철수" {
		t.Fatalf("unexpected first comment: %+v", comments[0])
	}
	if comments[0].Text != "쪽파김치1, 열무김치1" {
		t.Fatalf("unexpected first text: %q", comments[0].Text)
	}

	if comments[1].ID != "" || comments[1].Author != "이영희" || comments[1].Text != "2번 3개요" {
		t.Fatalf("unexpected second comment: %+v", comments[1])
	}
}

func TestParseCommentsEmptyDocument(t *testing.T) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader("<html><body></body></html>"))
	if err != nil {
		t.Fatalf("parse empty page: %v", err)
	}
	if comments := ParseComments(doc); len(comments) != 0 {
		t.Fatalf("expected no comments, got %+v", comments)
	}
}
