package server

import "html/template"

var pageTemplate = template.Must(template.New("links").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="utf-8">
  <title>Crypto Tax SDK Example</title>
</head>
<body>
  <main>
    <h1>Crypto Tax SDK Example</h1>
    <p>Create a tax calculation link for a set of wallet addresses.</p>

    <form method="post" action="/">
      <label for="api_key">API Key</label>
      <input id="api_key" name="api_key" type="password" value="{{.Form.APIKey}}" placeholder="Enter your API key">

      <fieldset>
        <legend>Wallet Addresses</legend>
        <button type="submit" name="action" value="add">+ Add Wallet</button>
        {{$canRemove := .CanRemove}}
        {{range $i, $w := .Form.Wallets}}
        <div class="wallet">
          <input type="text" name="address" value="{{$w.Address}}" placeholder="0x...">
          <input type="text" name="name" value="{{$w.Name}}" placeholder="Wallet name (optional)">
          {{if $canRemove}}<button type="submit" name="action" value="remove-{{$i}}">Remove</button>{{end}}
        </div>
        {{end}}
      </fieldset>

      <button type="submit" name="action" value="submit">Create Tax Link</button>
    </form>

    {{with .Error}}
    <div class="error"><p>Error: {{.}}</p></div>
    {{end}}

    {{with .Result}}
    <div class="result">
      <h2>Link Created Successfully!</h2>
      <p>Link Code:</p>
      <code>{{.Code}}</code>
      <p>Link URL:</p>
      <a href="{{.URL}}" target="_blank" rel="noopener noreferrer">{{.URL}}</a>
    </div>
    {{end}}
  </main>
</body>
</html>
`))
