package scrape

const detailPageFixture = `<!DOCTYPE html>
<html>
<head>
<title>AMD Ryzen 7 7800X3D - Micro Center</title>
<script>
var dataLayer = [{'productName':'AMD Ryzen 7 7800X3D Raphael AM5 4.2GHz 8-Core Boxed Processor','brand':'AMD','productPrice':'399.99','sku':'679294','productId':'12345'}];
</script>
</head>
<body>
<h1><span data-name="AMD Ryzen 7 7800X3D" data-brand="AMD">AMD Ryzen 7 7800X3D</span></h1>
<div class="product-meta">
  <span class="sku">SKU: 679294</span>
  <span class="part-number">Mfr Part#: 100-100000910WOF</span>
  <span class="upc">UPC: 730143314930</span>
</div>
<div class="ratings" data-rating="4.8" data-review-count="1,234">1,234 Reviews</div>
<div class="price-block">
  <span class="original">Original price $449.99</span>
  <span id="pricing" itemprop="price" content="399.99">$399.99</span>
</div>
<div class="inventory"><span class="inventoryCnt">25+ NEW IN STOCK</span> at <span class="storeName">Tustin Store</span></div>
<p class="location">Located in aisle 12, aisle 14</p>
<div class="services">
  <input type="radio" name="install" data-name="CPU Installation Service" data-price="49.99">
  <input type="radio" name="plan" data-name="2 Year Replacement Plan" data-price="59.99">
  <input type="radio" name="plan" data-name="2 Year Replacement Plan" data-price="59.99">
  <input type="radio" name="plan" data-name="3 Year Replacement Plan" data-price="79.99">
</div>
<input type="hidden" id="features" data-features="general|brand|AMD|general|model|Ryzen 7 7800X3D|processor|core_count|8|processor|core_count|8|warranty|parts|3 years|warranty|plan|2 Year Replacement Plan available">
</body>
</html>`

const fallbackSpecFixture = `<html><body>
<h1>Example Memory Kit</h1>
<div class="spec-group-title">memory</div>
<div class="spec-body"><div>Capacity:</div><div>32GB</div></div>
<div class="spec-body"><div>Capacity:</div><div>32GB</div></div>
<div class="spec-body"><div>Speed</div><div>DDR5-6000</div></div>
<ul>
  <li>Dual-channel kit optimized for AMD EXPO profiles</li>
  <li>Short</li>
  <li><a href="/cart">View cart and continue to checkout</a></li>
</ul>
<table>
  <tr><th>Warranty</th><td>Limited lifetime</td></tr>
  <tr><td>a</td><td>b</td><td>c</td></tr>
</table>
</body></html>`
