package handlers

import (
	"html/template"

	"ecart/internal/models"
)

// pageData feeds the storefront template.
type pageData struct {
	FlashMessage string
	FlashType    string
	DBConnected  bool
	DBVersion    string
	DBHost       string
	NodeName     string
	Products     []models.Product
	CartEntries  []models.CartEntry
	CartTotal    float64
	CartCount    int
	Orders       []models.Order
	OrderCount   int
}

var pageTemplate = template.Must(template.New("storefront").Parse(storefrontHTML))

const storefrontHTML = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>E-Cart — Demo Storefront</title>
  <style>
    * { box-sizing: border-box; margin: 0; padding: 0; }
    body { font-family: 'Segoe UI', Arial, sans-serif; background: #0a0e1a; color: #e0e0e0; min-height: 100vh; }
    header { background: #0d1b2a; border-bottom: 2px solid #0062ff; padding: 16px 32px; display: flex; align-items: center; justify-content: space-between; flex-wrap: wrap; gap: 10px; }
    header h1 { font-size: 1.4rem; color: #fff; }
    header h1 span { color: #0062ff; }
    .cart-badge { background: #0062ff; color: #fff; border-radius: 20px; padding: 8px 18px; font-size: 0.9rem; font-weight: 700; white-space: nowrap; }
    .arch-banner { display: flex; gap: 12px; padding: 12px 32px; background: #111827; border-bottom: 1px solid #1e2535; flex-wrap: wrap; }
    .arch-card { background: #1a2235; border-radius: 8px; padding: 10px 16px; border-left: 4px solid #0062ff; flex: 1; min-width: 160px; }
    .arch-card h3 { font-size: 0.65rem; text-transform: uppercase; letter-spacing: 1px; color: #666; margin-bottom: 3px; }
    .arch-card .value { font-size: 0.88rem; font-weight: 700; color: #0062ff; }
    .arch-card .value.ok { color: #4caf50; }
    .arch-card .value.bad { color: #f44336; }
    .arch-card .sub { font-size: 0.68rem; color: #555; margin-top: 2px; }
    .main { display: flex; gap: 20px; max-width: 1280px; margin: 20px auto; padding: 0 20px; align-items: flex-start; }
    .products-panel { flex: 2.5; }
    .cart-panel { flex: 1; min-width: 280px; position: sticky; top: 20px; }
    .card { background: #1a2235; border-radius: 10px; padding: 18px; margin-bottom: 18px; border: 1px solid #1e2535; }
    .card h2 { font-size: 0.95rem; color: #fff; margin-bottom: 14px; padding-bottom: 10px; border-bottom: 1px solid #1e2535; }
    .product-grid { display: grid; grid-template-columns: repeat(auto-fill, minmax(200px, 1fr)); gap: 12px; }
    .product-card { background: #111827; border-radius: 8px; padding: 14px; border: 1px solid #1e2535; }
    .product-card:hover { border-color: #0062ff; }
    .product-card .cat-tag { font-size: 0.65rem; color: #0062ff; background: #0a1628; border-radius: 4px; padding: 2px 7px; display: inline-block; margin-bottom: 6px; }
    .product-card h3 { font-size: 0.85rem; color: #fff; margin-bottom: 5px; line-height: 1.3; }
    .product-card .desc { font-size: 0.72rem; color: #666; margin-bottom: 10px; line-height: 1.4; }
    .product-card .price { font-size: 1.05rem; font-weight: 700; color: #0062ff; margin-bottom: 3px; }
    .product-card .stock { font-size: 0.68rem; margin-bottom: 10px; color: #4caf50; }
    .product-card .stock.out { color: #f44336; }
    .btn { padding: 8px 16px; border: none; border-radius: 6px; cursor: pointer; font-size: 0.82rem; font-weight: 600; }
    .btn-primary { background: #0062ff; color: #fff; width: 100%; }
    .btn-primary:hover { background: #0050d0; }
    .btn-primary:disabled { opacity: 0.35; cursor: not-allowed; }
    .btn-danger { background: transparent; color: #f44336; border: 1px solid #f44336; padding: 4px 10px; font-size: 0.75rem; }
    .btn-success { background: #4caf50; color: #fff; width: 100%; padding: 12px; font-size: 0.95rem; border-radius: 8px; }
    .flash { padding: 10px 14px; border-radius: 6px; margin-bottom: 14px; font-size: 0.82rem; }
    .flash.success { background: #0d2a0d; border: 1px solid #4caf50; color: #4caf50; }
    .flash.error { background: #2a0d0d; border: 1px solid #f44336; color: #f44336; }
    table { width: 100%; border-collapse: collapse; }
    th { text-align: left; font-size: 0.68rem; text-transform: uppercase; color: #555; padding: 6px 8px; border-bottom: 1px solid #1e2535; }
    td { padding: 8px 8px; border-bottom: 1px solid #111827; font-size: 0.82rem; vertical-align: middle; }
    .cart-total-row { display: flex; justify-content: space-between; align-items: center; padding: 12px 0 8px; border-top: 1px solid #1e2535; margin-top: 8px; }
    .cart-total-row .label { font-size: 0.85rem; color: #888; }
    .cart-total-row .amount { font-size: 1.25rem; font-weight: 700; color: #0062ff; }
    .empty { text-align: center; color: #444; padding: 20px; font-size: 0.82rem; }
    .qty-wrap { display: flex; align-items: center; gap: 6px; margin-bottom: 8px; }
    .qty-input { width: 48px; background: #0a0e1a; border: 1px solid #1e2535; border-radius: 4px; padding: 4px 8px; color: #e0e0e0; font-size: 0.8rem; text-align: center; }
    .form-field { margin-bottom: 10px; }
    .form-field label { display: block; font-size: 0.7rem; color: #666; margin-bottom: 4px; text-transform: uppercase; }
    .form-field input { width: 100%; background: #0a0e1a; border: 1px solid #1e2535; border-radius: 6px; padding: 8px 12px; color: #e0e0e0; font-size: 0.82rem; }
    .form-row { display: flex; gap: 10px; flex-wrap: wrap; }
    .form-row .form-field { flex: 1; min-width: 100px; }
    .orders-count { font-size: 0.75rem; color: #555; }
    footer { text-align: center; padding: 16px; color: #333; font-size: 0.72rem; border-top: 1px solid #111827; }
  </style>
</head>
<body>
  <header>
    <h1>E-<span>Cart</span></h1>
    <span class="cart-badge">&#128722; {{.CartCount}} item{{if ne .CartCount 1}}s{{end}} &nbsp;|&nbsp; ${{printf "%.2f" .CartTotal}}</span>
  </header>

  <div class="arch-banner">
    <div class="arch-card">
      <h3>App Server</h3>
      <div class="value">{{.NodeName}}</div>
      <div class="sub">this pod</div>
    </div>
    <div class="arch-card">
      <h3>Database</h3>
      <div class="value">{{.DBHost}}</div>
      <div class="sub">PostgreSQL</div>
    </div>
    <div class="arch-card">
      <h3>DB Status</h3>
      {{if .DBConnected}}<div class="value ok">Connected &#10003;</div>{{else}}<div class="value bad">Disconnected &#10007;</div>{{end}}
      <div class="sub">{{.DBVersion}}</div>
    </div>
  </div>

  <div class="main">
    <div class="products-panel">
      {{if .FlashMessage}}<div class="flash {{.FlashType}}">{{.FlashMessage}}</div>{{end}}

      <div class="card">
        <h2>&#128230; Product Catalog</h2>
        <div class="product-grid">
          {{if not .Products}}<div class="empty">No products yet. Add your first product below!</div>{{end}}
          {{range .Products}}
          <div class="product-card">
            <span class="cat-tag">{{.Category}}</span>
            <h3>{{.Name}}</h3>
            <div class="desc">{{.Description}}</div>
            <div class="price">${{printf "%.2f" .Price}}</div>
            {{if gt .Stock 0}}<div class="stock">{{.Stock}} in stock</div>{{else}}<div class="stock out">Out of stock</div>{{end}}
            <form method="POST" action="/ui/cart/add">
              <input type="hidden" name="product_id" value="{{.ID}}">
              <div class="qty-wrap">
                <span>Qty:</span>
                <input type="text" name="quantity" value="1" class="qty-input" maxlength="3">
              </div>
              <button type="submit" class="btn btn-primary"{{if eq .Stock 0}} disabled{{end}}>&#43; Add to Cart</button>
            </form>
          </div>
          {{end}}
        </div>
      </div>

      <div class="card">
        <h2>&#43; Add New Product</h2>
        <form method="POST" action="/ui/products">
          <div class="form-row">
            <div class="form-field" style="flex:3;">
              <label>Product Name *</label>
              <input type="text" name="name" required maxlength="255">
            </div>
            <div class="form-field" style="flex:1;">
              <label>Category</label>
              <input type="text" name="category" placeholder="General" maxlength="100">
            </div>
          </div>
          <div class="form-row">
            <div class="form-field" style="flex:2;">
              <label>Description</label>
              <input type="text" name="description" maxlength="1000">
            </div>
            <div class="form-field" style="flex:1;">
              <label>Price ($) *</label>
              <input type="text" name="price" placeholder="999.99" required maxlength="20">
            </div>
            <div class="form-field" style="flex:1;">
              <label>Stock</label>
              <input type="text" name="stock" placeholder="10" maxlength="10">
            </div>
          </div>
          <button type="submit" class="btn btn-primary" style="width:auto;">&#128190; Add Product</button>
        </form>
      </div>
    </div>

    <div class="cart-panel">
      <div class="card">
        <h2>&#128722; Your Cart</h2>
        {{if .CartEntries}}
        <table>
          <tr><th>Product</th><th>Qty</th><th>Total</th><th></th></tr>
          {{range .CartEntries}}
          <tr>
            <td title="{{.ProductName}}">{{.ProductName}}</td>
            <td style="text-align:center;">{{.Quantity}}</td>
            <td>${{printf "%.2f" .Subtotal}}</td>
            <td>
              <form method="POST" action="/ui/cart/{{.CartID}}/remove" style="display:inline;">
                <button type="submit" class="btn btn-danger">&#10005;</button>
              </form>
            </td>
          </tr>
          {{end}}
        </table>
        {{else}}
        <div class="empty">Your cart is empty.</div>
        {{end}}
        <div class="cart-total-row">
          <span class="label">Total</span>
          <span class="amount">${{printf "%.2f" .CartTotal}}</span>
        </div>
        {{if .CartEntries}}
        <form method="POST" action="/ui/checkout" style="margin-top:10px;">
          <button type="submit" class="btn btn-success">&#9989; Place Order</button>
        </form>
        {{end}}
      </div>

      <div class="card">
        <h2>&#9989; Orders <span class="orders-count">({{.OrderCount}} placed)</span></h2>
        {{if .Orders}}
        <table>
          <tr><th>#</th><th>Total</th><th>Status</th><th>Date</th></tr>
          {{range .Orders}}
          <tr>
            <td>#{{.ID}}</td>
            <td>${{printf "%.2f" .TotalAmount}}</td>
            <td>{{.Status}}</td>
            <td>{{.CreatedAt.Format "2006-01-02 15:04"}}</td>
          </tr>
          {{end}}
        </table>
        {{else}}
        <div class="empty">No orders yet.</div>
        {{end}}
      </div>
    </div>
  </div>

  <footer>E-Cart demo storefront</footer>
</body>
</html>`
