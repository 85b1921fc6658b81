// Package lsclient is the entry point for building a Lockstep Platform API
// client that implements lockstep.Client.
//
// It resolves the environment to an API root, checks the configuration and
// wires credentials and transport options before handing back the client.
//
// Quick start
//
//	ctx := context.Background()
//
//	cli, err := lsclient.NewWithAPIKey(ctx, "sbx", os.Getenv("LOCKSTEP_API_KEY"))
//	if err != nil { log.Fatal(err) }
//
//	resp, err := cli.Invoices().Retrieve(ctx, "6f0c4a1e-...", nil)
//	if err != nil { log.Fatal(err) } // no response, or an undecodable one
//
//	if !resp.OK() {
//	  log.Printf("lockstep said %d: %v", resp.StatusCode(), resp.Err())
//	  return
//	}
//
//	invoice, _ := resp.Value()
//	fmt.Println(invoice.InvoiceID, invoice.TotalAmount)
//
// Environment
//
// NewFromEnv loads an optional .env file and reads LOCKSTEP_ENV,
// LOCKSTEP_BASE_URL, LOCKSTEP_API_KEY or LOCKSTEP_BEARER_TOKEN, plus the
// tuning variables listed on EnvConfig.
package lsclient
