// Package dashboard embeds the PayZee benefits dashboard list views in a
// Go program, without running the HTTP service.
//
// Every list starts on its built-in sample set. With a ledger configured,
// Mount replaces the remote-backed lists with a fetched snapshot:
//
//	client, _ := dashboard.New(ctx,
//	    dashboard.WithLedger("http://127.0.0.1:8000/api/v1", token),
//	    dashboard.WithValkey("localhost:6379", ""),
//	)
//	defer client.Close()
//	_ = client.Mount(ctx)
//
//	view, _ := client.View(ctx, "vendors", dashboard.Query{
//	    Filters: map[string]string{"status": "Active"},
//	    Search:  "agro",
//	})
//	next, _ := client.Transition(ctx, "vendors", dashboard.QueryOf(view),
//	    dashboard.Action{Kind: dashboard.NextPage})
package dashboard
