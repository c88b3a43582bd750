// Package printing turns financial statements into downloadable documents.
//
// A Document is a titled table of labelled rows with current and previous
// year amounts. It is rendered to HTML with html/template and then to PDF
// through headless Chrome (chromedp), or written out as CSV.
//
//	renderer, err := printing.NewChromedpRenderer(&printing.ChromedpConfig{Timeout: 30 * time.Second})
//	if err != nil {
//	    return err
//	}
//	defer renderer.Close()
//
//	html, err := printing.RenderHTML(doc)
//	result, err := renderer.Render(ctx, &printing.RenderRequest{HTML: html, Title: doc.Title})
package printing
